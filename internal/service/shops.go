package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/flicky/go-shop-api/internal/shop"
)

// ShopStore maps shopper ids to their in-memory shop state.
type ShopStore struct {
	mu    sync.RWMutex
	shops map[uuid.UUID]*shop.Shop
	opts  shop.Options
}

func NewShopStore(opts shop.Options) *ShopStore {
	return &ShopStore{shops: make(map[uuid.UUID]*shop.Shop), opts: opts}
}

// Get returns the shopper's shop, creating an empty one on first use.
func (s *ShopStore) Get(shopperID uuid.UUID) *shop.Shop {
	s.mu.RLock()
	sh, ok := s.shops[shopperID]
	s.mu.RUnlock()
	if ok {
		return sh
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sh, ok := s.shops[shopperID]; ok {
		return sh
	}
	sh = shop.New(s.opts)
	s.shops[shopperID] = sh
	return sh
}

func (s *ShopStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shops)
}
