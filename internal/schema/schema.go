package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User document. The password hash never leaves the server.
type User struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdat" json:"createdAt"`
}

// Post document. Likes holds the ids of users who currently like the
// post; it is only ever mutated through atomic update operators, so it
// never contains the same id twice.
type Post struct {
	ID        primitive.ObjectID   `bson:"_id" json:"id"`
	Title     string               `bson:"title" json:"title"`
	Body      string               `bson:"body" json:"body"`
	CreatedBy primitive.ObjectID   `bson:"createdby" json:"createdBy"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt time.Time            `bson:"createdat" json:"createdAt"`
}

// Comment document. ReplyTo is set only when IsReply is true and always
// references a top-level comment on the same post.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	PostID    primitive.ObjectID `bson:"postid" json:"postId"`
	UserID    primitive.ObjectID `bson:"userid" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	IsReply   bool               `bson:"isreply" json:"isReply"`
	ReplyTo   primitive.ObjectID `bson:"replyto,omitempty" json:"replyTo,omitempty"`
	CreatedAt time.Time          `bson:"createdat" json:"createdAt"`
}

// Author is the resolved display identity of a user reference.
type Author struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

// ResolvedPost is a post with its creator joined in by the store.
type ResolvedPost struct {
	ID        primitive.ObjectID   `bson:"_id" json:"id"`
	Title     string               `bson:"title" json:"title"`
	Body      string               `bson:"body" json:"body"`
	CreatedBy Author               `bson:"author" json:"createdBy"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt time.Time            `bson:"createdat" json:"createdAt"`
}

// ResolvedComment is a comment with its author joined in by the store.
type ResolvedComment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	PostID    primitive.ObjectID `bson:"postid" json:"postId"`
	Author    Author             `bson:"author" json:"user"`
	Text      string             `bson:"text" json:"text"`
	IsReply   bool               `bson:"isreply" json:"isReply"`
	ReplyTo   primitive.ObjectID `bson:"replyto,omitempty" json:"replyTo,omitempty"`
	CreatedAt time.Time          `bson:"createdat" json:"createdAt"`
}

// ThreadedComment is a top-level comment carrying its replies in
// creation order.
type ThreadedComment struct {
	ResolvedComment
	Replies []ResolvedComment `json:"replies"`
}

// Request bodies.

type SignupBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PostBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type CommentBody struct {
	PostID string `json:"postId"`
	Text   string `json:"text"`
}

type ReplyBody struct {
	Text string `json:"text"`
}
