package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKeyUserID struct{}

func WithUserID(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, ctxKeyUserID{}, id)
}

func UserIDFrom(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(ctxKeyUserID{}).(primitive.ObjectID)
	return id, ok && !id.IsZero()
}
