package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type emails map[string]string

func (e emails) UserEmail(_ context.Context, id string) (string, error) {
	if id == "broken" {
		return "", errors.New("db down")
	}
	return e[id], nil
}

func TestEmailAllowList(t *testing.T) {
	store := emails{"admin": "Admin@Example.com", "user": "user@example.com", "blank": ""}
	ctx := context.Background()

	policy := EmailAllowList{Email: "admin@example.com", Users: store}

	ok, err := policy.IsAdmin(ctx, "admin")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, _ = policy.IsAdmin(ctx, "user")
	assert.False(t, ok)

	ok, _ = policy.IsAdmin(ctx, "blank")
	assert.False(t, ok)

	ok, _ = policy.IsAdmin(ctx, "unknown")
	assert.False(t, ok)

	_, err = policy.IsAdmin(ctx, "broken")
	assert.Error(t, err)
}

func TestEmailAllowListUnconfigured(t *testing.T) {
	policy := EmailAllowList{Users: emails{"admin": "admin@example.com", "blank": ""}}
	for _, id := range []string{"admin", "blank", ""} {
		ok, err := policy.IsAdmin(context.Background(), id)
		assert.NoError(t, err)
		assert.False(t, ok, id)
	}
}
