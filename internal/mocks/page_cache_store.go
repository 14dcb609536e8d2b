package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"yatube/internal/ports/pagecache"
)

// ErrStoreDown is what MockPageCacheStore returns while Down is set.
var ErrStoreDown = errors.New("store down")

type cachedPage struct {
	value     []byte
	expiresAt time.Time
}

// MockPageCacheStore is an in-memory pagecache.Store with a controllable clock and outage switch.
type MockPageCacheStore struct {
	mu    sync.Mutex
	pages map[string]cachedPage
	Now   func() time.Time
	Down  bool

	Gets int
	Sets int
}

func NewMockPageCacheStore() *MockPageCacheStore {
	return &MockPageCacheStore{
		pages: make(map[string]cachedPage),
		Now:   time.Now,
	}
}

func (m *MockPageCacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Gets++
	if m.Down {
		return nil, ErrStoreDown
	}
	page, ok := m.pages[key]
	if !ok || !m.Now().Before(page.expiresAt) {
		delete(m.pages, key)
		return nil, pagecache.ErrMiss
	}
	return page.value, nil
}

func (m *MockPageCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sets++
	if m.Down {
		return ErrStoreDown
	}
	m.pages[key] = cachedPage{value: value, expiresAt: m.Now().Add(ttl)}
	return nil
}

func (m *MockPageCacheStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Down {
		return ErrStoreDown
	}
	delete(m.pages, key)
	return nil
}

func (m *MockPageCacheStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Down {
		return ErrStoreDown
	}
	m.pages = make(map[string]cachedPage)
	return nil
}

// Len reports how many pages are stored, expired or not.
func (m *MockPageCacheStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pages)
}
