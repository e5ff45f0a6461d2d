package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dcode36/post-comment-system/internal/db"
	"github.com/Dcode36/post-comment-system/internal/schema"
)

type UserStore struct {
	users *mongo.Collection
}

func NewUserStore(database *mongo.Database) *UserStore {
	return &UserStore{users: database.Collection(db.UsersCollection)}
}

// Create registers a new user with a bcrypt-hashed password. A
// duplicate email surfaces as ErrEmailTaken, backed by the unique index.
func (s *UserStore) Create(ctx context.Context, name, email, password string) (schema.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" || email == "" || password == "" {
		return schema.User{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if len(password) < 6 {
		return schema.User{}, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return schema.User{}, err
	}

	user := schema.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return schema.User{}, ErrEmailTaken
		}
		return schema.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Authenticate verifies the email/password pair and returns the stored
// user. Both an unknown email and a bad password map to ErrInvalidLogin
// so the response does not reveal which one failed.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (schema.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var user schema.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return schema.User{}, ErrInvalidLogin
	}
	if err != nil {
		return schema.User{}, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return schema.User{}, ErrInvalidLogin
	}
	return user, nil
}
