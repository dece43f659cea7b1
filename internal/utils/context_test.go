package utils

import (
	"context"
	"testing"

	"github.com/Yemmy22/alx-backend-user-data/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserFromContext_Present(t *testing.T) {
	want := models.User{UserID: 42, Email: "bob@dylan.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	got, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not a user")
	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)
}
