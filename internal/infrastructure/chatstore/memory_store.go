package chatstore

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/pkg/constants"
)

type memoryStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

var _ service.ChatStore = (*memoryStore)(nil)

// NewMemoryStore creates an in-process ChatStore with the given idle TTL.
func NewMemoryStore(ttl time.Duration) service.ChatStore {
	if ttl <= 0 {
		ttl = constants.DefaultChatSessionTTL
	}
	return &memoryStore{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *memoryStore) Append(ctx context.Context, sessionID string, msg service.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []service.ChatMessage
	if cached, found := s.cache.Get(sessionID); found {
		history = cached.([]service.ChatMessage)
	}
	history = append(history, msg)
	s.cache.SetDefault(sessionID, history)
	return nil
}

func (s *memoryStore) History(ctx context.Context, sessionID string) ([]service.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, found := s.cache.Get(sessionID)
	if !found {
		return nil, nil
	}
	history := cached.([]service.ChatMessage)
	out := make([]service.ChatMessage, len(history))
	copy(out, history)
	return out, nil
}
