package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dcode36/post-comment-system/internal/db"
	"github.com/Dcode36/post-comment-system/internal/schema"
)

type PostStore struct {
	posts *mongo.Collection
}

func NewPostStore(database *mongo.Database) *PostStore {
	return &PostStore{posts: database.Collection(db.PostsCollection)}
}

func (s *PostStore) Create(ctx context.Context, title, body string, creator primitive.ObjectID) (schema.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return schema.Post{}, fmt.Errorf("%w: title and body are required", ErrValidation)
	}

	post := schema.Post{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Body:      body,
		CreatedBy: creator,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return schema.Post{}, fmt.Errorf("insert post: %w", err)
	}
	return post, nil
}

// lookupAuthor joins the creator's display identity into each post.
func lookupAuthor(localField string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.UsersCollection},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		{{Key: "$unwind", Value: "$author"}},
	}
}

// List returns all posts newest-first with their creators resolved.
func (s *PostStore) List(ctx context.Context) ([]schema.ResolvedPost, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdat", Value: -1}}}},
	}
	pipeline = append(pipeline, lookupAuthor("createdby")...)

	cursor, err := s.posts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := []schema.ResolvedPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (s *PostStore) Get(ctx context.Context, id primitive.ObjectID) (schema.ResolvedPost, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, lookupAuthor("createdby")...)

	cursor, err := s.posts.Aggregate(ctx, pipeline)
	if err != nil {
		return schema.ResolvedPost{}, fmt.Errorf("get post: %w", err)
	}

	var posts []schema.ResolvedPost
	if err := cursor.All(ctx, &posts); err != nil {
		return schema.ResolvedPost{}, fmt.Errorf("decode post: %w", err)
	}
	if len(posts) == 0 {
		return schema.ResolvedPost{}, ErrNotFound
	}
	return posts[0], nil
}

// ToggleLike flips the caller's membership in the post's liker set with
// a single FindOneAndUpdate. The pipeline update removes the id when it
// is present ($filter keeps the rest in order) and appends it when it is
// not, so concurrent toggles each see a consistent document and the set
// can never hold the same id twice.
func (s *PostStore) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"likes": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{userID, "$likes"}},
				bson.M{"$filter": bson.M{
					"input": "$likes",
					"as":    "liker",
					"cond":  bson.M{"$ne": bson.A{"$$liker", userID}},
				}},
				bson.M{"$concatArrays": bson.A{"$likes", bson.A{userID}}},
			}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post schema.Post
	err := s.posts.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	for _, liker := range post.Likes {
		if liker == userID {
			return true, nil
		}
	}
	return false, nil
}
