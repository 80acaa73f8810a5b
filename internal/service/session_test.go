package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Create(t *testing.T) {
	shops := newTestShops()
	svc := NewSessionService(shops, "test-secret", time.Hour)

	resp, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 1, shops.Len())

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.ShopperID.String(), claims["sub"])
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)
}

func TestSessionService_DistinctShoppers(t *testing.T) {
	svc := NewSessionService(newTestShops(), "test-secret", time.Hour)
	a, err := svc.Create(context.Background())
	require.NoError(t, err)
	b, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a.ShopperID, b.ShopperID)
}
