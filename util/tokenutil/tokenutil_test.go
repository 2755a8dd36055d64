package tokenutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/07piyush/wardrobeai/domain"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &domain.User{
		ID:   primitive.NewObjectID(),
		Name: "Piyush",
	}

	token, err := CreateAccessToken(user, "secret", 2)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	authorized, err := IsAuthorized(token, "secret")
	require.NoError(t, err)
	assert.True(t, authorized)

	id, err := ExtractIDFromToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), id)
}

func TestIsAuthorizedWrongSecret(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "Piyush"}

	token, err := CreateAccessToken(user, "secret", 2)
	require.NoError(t, err)

	authorized, err := IsAuthorized(token, "other-secret")
	assert.Error(t, err)
	assert.False(t, authorized)
}

func TestIsAuthorizedGarbageToken(t *testing.T) {
	authorized, err := IsAuthorized("not-a-jwt", "secret")
	assert.Error(t, err)
	assert.False(t, authorized)
}

func TestExtractIDFromExpiredToken(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "Piyush"}

	token, err := CreateAccessToken(user, "secret", -1)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token, "secret")
	assert.Error(t, err)
}
