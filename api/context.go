package api

import (
	"context"
	"errors"
)

type keyType string

const userIDKey keyType = "userID"

// ctxWithUserID adds the authenticated owner id to the context
func ctxWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxUserID retrieves the authenticated owner id from the context
func ctxUserID(ctx context.Context) (string, error) {
	ctxValue := ctx.Value(userIDKey)
	if ctxValue == nil {
		return "", errors.New("no user identity in context")
	}
	userID, ok := ctxValue.(string)
	if !ok || userID == "" {
		return "", errors.New("user identity is not a string")
	}
	return userID, nil
}
