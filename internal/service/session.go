package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/flicky/go-shop-api/internal/dto"
)

// SessionService issues guest tokens. Each token names a fresh shopper whose
// state lives in the ShopStore.
type SessionService struct {
	shops     *ShopStore
	jwtSecret []byte
	jwtExpiry time.Duration
	now       func() time.Time
}

func NewSessionService(shops *ShopStore, jwtSecret string, jwtExpiry time.Duration) *SessionService {
	return &SessionService{shops: shops, jwtSecret: []byte(jwtSecret), jwtExpiry: jwtExpiry, now: time.Now}
}

func (s *SessionService) Create(_ context.Context) (*dto.SessionResponse, error) {
	shopperID := uuid.New()
	expiresAt := s.now().Add(s.jwtExpiry)

	token, err := s.generateToken(shopperID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	s.shops.Get(shopperID)

	return &dto.SessionResponse{Token: token, ShopperID: shopperID, ExpiresAt: expiresAt}, nil
}

func (s *SessionService) generateToken(shopperID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": shopperID.String(),
		"iat": s.now().Unix(),
		"exp": expiresAt.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
