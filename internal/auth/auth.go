package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const issuer = "post-comment-system"

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs a bearer token carrying the user's id as the
// subject claim.
func GenerateToken(secret []byte, userID primitive.ObjectID, lifetime time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"iss": issuer,
			"sub": userID.Hex(),
			"iat": now.Unix(),
			"exp": now.Add(lifetime).Unix(),
		})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("unable to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of a bearer token and
// returns the user id it carries.
func ParseToken(secret []byte, tokenString string) (primitive.ObjectID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return id, nil
}
