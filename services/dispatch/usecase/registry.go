package usecase

import (
	"context"
	"sync"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

type session struct {
	provider dispatch.DataProvider
	once     sync.Once
}

// registry implements dispatch.Registry
type registry struct {
	cfg     *models.Config
	store   dispatch.Store
	eventGW dispatch.EventGW
	opts    []Option
	factory func() dispatch.DataProvider

	mu       sync.Mutex
	sessions map[string]*session
}

// NewRegistry creates a registry building providers over store and eventGW
func NewRegistry(cfg *models.Config, store dispatch.Store, eventGW dispatch.EventGW, opts ...Option) dispatch.Registry {
	r := &registry{
		cfg:      cfg,
		store:    store,
		eventGW:  eventGW,
		opts:     opts,
		sessions: make(map[string]*session),
	}
	r.factory = func() dispatch.DataProvider {
		return NewDataProvider(r.cfg, r.store, r.eventGW, r.opts...)
	}
	return r
}

// Get returns the provider of userID. The first call binds the identity and
// blocks until the initial load finishes; concurrent callers wait for it.
func (r *registry) Get(ctx context.Context, userID string) dispatch.DataProvider {
	r.mu.Lock()
	s, ok := r.sessions[userID]
	if !ok {
		s = &session{provider: r.factory()}
		r.sessions[userID] = s
	}
	r.mu.Unlock()

	s.once.Do(func() {
		// the load outlives the request that triggered it
		if err := s.provider.SetIdentity(context.WithoutCancel(ctx), userID); err != nil {
			logger.Warn("Initial load incomplete",
				logger.String("user_id", userID),
				logger.Err(err))
		}
	})
	return s.provider
}

// Logout clears and forgets the provider of userID
func (r *registry) Logout(userID string) {
	r.mu.Lock()
	s, ok := r.sessions[userID]
	delete(r.sessions, userID)
	r.mu.Unlock()

	if ok {
		s.provider.ClearIdentity()
		s.provider.Close()
	}
}

// Close shuts every provider down
func (r *registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.provider.Close()
	}
}
