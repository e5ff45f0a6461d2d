package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Dcode36/post-comment-system/internal/db"
	"github.com/Dcode36/post-comment-system/internal/schema"
)

type CommentStore struct {
	comments *mongo.Collection
	posts    *mongo.Collection
}

func NewCommentStore(database *mongo.Database) *CommentStore {
	return &CommentStore{
		comments: database.Collection(db.CommentsCollection),
		posts:    database.Collection(db.PostsCollection),
	}
}

// Add creates a top-level comment on an existing post.
func (s *CommentStore) Add(ctx context.Context, postID, author primitive.ObjectID, text string) (schema.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return schema.Comment{}, fmt.Errorf("%w: text is required", ErrValidation)
	}

	count, err := s.posts.CountDocuments(ctx, bson.M{"_id": postID})
	if err != nil {
		return schema.Comment{}, fmt.Errorf("check post: %w", err)
	}
	if count == 0 {
		return schema.Comment{}, ErrNotFound
	}

	comment := schema.Comment{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		UserID:    author,
		Text:      text,
		IsReply:   false,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.comments.InsertOne(ctx, comment); err != nil {
		return schema.Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	return comment, nil
}

// Reply creates a reply under a top-level comment. Only the creator of
// the comment's post may reply, and a reply can never target another
// reply, which keeps every thread exactly two levels deep.
func (s *CommentStore) Reply(ctx context.Context, parentID, author primitive.ObjectID, text string) (schema.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return schema.Comment{}, fmt.Errorf("%w: text is required", ErrValidation)
	}

	var parent schema.Comment
	err := s.comments.FindOne(ctx, bson.M{"_id": parentID}).Decode(&parent)
	if err == mongo.ErrNoDocuments {
		return schema.Comment{}, ErrNotFound
	}
	if err != nil {
		return schema.Comment{}, fmt.Errorf("find parent comment: %w", err)
	}
	if parent.IsReply {
		return schema.Comment{}, fmt.Errorf("%w: cannot reply to a reply", ErrValidation)
	}

	var post schema.Post
	err = s.posts.FindOne(ctx, bson.M{"_id": parent.PostID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return schema.Comment{}, ErrNotFound
	}
	if err != nil {
		return schema.Comment{}, fmt.Errorf("find post: %w", err)
	}
	if post.CreatedBy != author {
		return schema.Comment{}, fmt.Errorf("%w: only the post creator can reply to comments", ErrForbidden)
	}

	reply := schema.Comment{
		ID:        primitive.NewObjectID(),
		PostID:    parent.PostID,
		UserID:    author,
		Text:      text,
		IsReply:   true,
		ReplyTo:   parentID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.comments.InsertOne(ctx, reply); err != nil {
		return schema.Comment{}, fmt.Errorf("insert reply: %w", err)
	}
	return reply, nil
}

// ListThreaded fetches the post's comments oldest-first with authors
// resolved and assembles the two-level thread.
func (s *CommentStore) ListThreaded(ctx context.Context, postID primitive.ObjectID) ([]schema.ThreadedComment, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"postid": postID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdat", Value: 1}}}},
	}
	pipeline = append(pipeline, lookupAuthor("userid")...)

	cursor, err := s.comments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	var flat []schema.ResolvedComment
	if err := cursor.All(ctx, &flat); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return BuildThread(flat), nil
}

// BuildThread partitions a flat, creation-ordered comment list into
// top-level comments carrying their replies. Replies keep their fetch
// order. A reply whose parent is missing from the list is dropped.
func BuildThread(flat []schema.ResolvedComment) []schema.ThreadedComment {
	threads := make([]schema.ThreadedComment, 0, len(flat))
	index := make(map[primitive.ObjectID]int, len(flat))

	for _, c := range flat {
		if c.IsReply {
			continue
		}
		index[c.ID] = len(threads)
		threads = append(threads, schema.ThreadedComment{
			ResolvedComment: c,
			Replies:         []schema.ResolvedComment{},
		})
	}

	for _, c := range flat {
		if !c.IsReply {
			continue
		}
		i, ok := index[c.ReplyTo]
		if !ok {
			continue
		}
		threads[i].Replies = append(threads[i].Replies, c)
	}
	return threads
}
