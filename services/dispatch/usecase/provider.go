package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/retry"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxLoadAttempts = 3
	refetchTimeout         = 30 * time.Second
)

// errStaleGeneration stops a load whose identity has been replaced
var errStaleGeneration = errors.New("identity changed during load")

// Option customises a data provider
type Option func(*dataProvider)

// WithClock replaces time.Now, used for schedule validation and timestamps
func WithClock(now func() time.Time) Option {
	return func(p *dataProvider) { p.now = now }
}

// WithLocation sets the zone project dates and times are interpreted in
func WithLocation(loc *time.Location) Option {
	return func(p *dataProvider) { p.loc = loc }
}

// WithLogger sets the provider logger
func WithLogger(l *logger.ZapLogger) Option {
	return func(p *dataProvider) { p.logger = l }
}

// dataProvider implements dispatch.DataProvider
type dataProvider struct {
	cfg     models.DispatchConfig
	store   dispatch.Store
	eventGW dispatch.EventGW
	logger  *logger.ZapLogger
	retrier *retry.Retrier
	now     func() time.Time
	loc     *time.Location

	mu         sync.RWMutex
	generation uint64
	userID     string
	loaded     bool
	attempts   int
	loading    bool
	errMsg     string
	revision   uint64
	companies  []models.Company
	drivers    []models.Driver
	carTypes   []models.CarType
	projects   []models.Project
	payments   []models.Payment
	timers     map[*time.Timer]struct{}
	completing map[string]struct{}
	closed     bool

	subsMu  sync.Mutex
	subs    map[int]chan models.ProviderState
	nextSub int

	wg sync.WaitGroup
}

// NewDataProvider creates a provider with no identity
func NewDataProvider(cfg *models.Config, store dispatch.Store, eventGW dispatch.EventGW, opts ...Option) dispatch.DataProvider {
	p := &dataProvider{
		cfg:     cfg.Dispatch,
		store:   store,
		eventGW: eventGW,
		now:     time.Now,
		loc:     time.Local,
		timers:  make(map[*time.Timer]struct{}),
		subs:    make(map[int]chan models.ProviderState),

		completing: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.GetGlobalLogger()
	}

	attempts := p.cfg.MaxLoadAttempts
	if attempts <= 0 {
		attempts = defaultMaxLoadAttempts
	}
	retryCfg := retry.FixedConfig(attempts, p.cfg.LoadRetryDelay)
	retryCfg.RetryableFunc = func(err error) bool {
		return !errors.Is(err, errStaleGeneration)
	}
	p.retrier = retry.New(retryCfg, p.logger)
	return p
}

// SetIdentity binds the provider to userID and runs the initial load.
// An empty userID behaves like ClearIdentity. Repeating the current
// identity is a no-op, whether its load succeeded, failed or is running.
func (p *dataProvider) SetIdentity(ctx context.Context, userID string) error {
	if userID == "" {
		p.ClearIdentity()
		return nil
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return dispatch.ErrNoIdentity
	}
	if p.userID == userID {
		p.mu.Unlock()
		return nil
	}
	p.generation++
	gen := p.generation
	p.userID = userID
	p.loaded = false
	p.attempts = 0
	p.errMsg = ""
	p.resetLocked()
	p.mu.Unlock()
	p.notify()

	return p.load(ctx, gen, userID)
}

// load runs up to MaxLoadAttempts all-settled fetch cycles
func (p *dataProvider) load(ctx context.Context, gen uint64, userID string) error {
	if !p.setLoading(gen, true) {
		return nil
	}
	defer p.setLoading(gen, false)

	err := p.retrier.Execute(ctx, func(ctx context.Context) error {
		if !p.beginAttempt(gen) {
			return errStaleGeneration
		}

		b := &batch{}
		failed := p.fetchSettled(ctx, b, userID)
		if !p.applyBatch(gen, b, func(table string) bool { _, bad := failed[table]; return !bad }) {
			return errStaleGeneration
		}

		if len(failed) > 0 {
			errs := make([]error, 0, len(failed))
			for table, err := range failed {
				p.logger.Warn("Failed to load collection",
					logger.String("user_id", userID),
					logger.String("table", table),
					logger.Err(err))
				errs = append(errs, err)
			}
			p.setError(gen, dispatch.MsgLoadFailed)
			return fmt.Errorf("%d of %d collections failed to load: %w", len(failed), len(allTables), errors.Join(errs...))
		}

		p.mu.Lock()
		if gen == p.generation {
			p.loaded = true
			p.attempts = 0
			p.errMsg = ""
		}
		p.mu.Unlock()
		return nil
	})
	if errors.Is(err, errStaleGeneration) {
		return nil
	}
	if err != nil {
		p.logger.Error("Initial load gave up",
			logger.String("user_id", userID),
			logger.Int("attempts", p.retrier.Attempts()),
			logger.Err(err))
	}
	return err
}

func (p *dataProvider) beginAttempt(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return false
	}
	p.attempts++
	return true
}

// fetchSettled runs every fetch and waits for all of them
func (p *dataProvider) fetchSettled(ctx context.Context, b *batch, userID string) map[string]error {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed = make(map[string]error)
	)
	for _, f := range b.fetchers(p.store, userID) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.run(ctx); err != nil {
				mu.Lock()
				failed[f.table] = err
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return failed
}

// ClearIdentity drops the identity and everything loaded for it
func (p *dataProvider) ClearIdentity() {
	p.mu.Lock()
	p.generation++
	p.userID = ""
	p.loaded = false
	p.attempts = 0
	p.loading = false
	p.errMsg = ""
	p.resetLocked()
	p.stopTimersLocked()
	p.mu.Unlock()
	p.notify()
}

// resetLocked empties the collections; callers hold mu
func (p *dataProvider) resetLocked() {
	p.companies = nil
	p.drivers = nil
	p.carTypes = nil
	p.projects = nil
	p.payments = nil
	p.revision++
}

func (p *dataProvider) stopTimersLocked() {
	for t := range p.timers {
		if t.Stop() {
			p.wg.Done()
		}
	}
	p.timers = make(map[*time.Timer]struct{})
}

// Refresh re-fetches all five collections and fails as a whole if any fetch fails
func (p *dataProvider) Refresh(ctx context.Context) error {
	p.mu.Lock()
	userID, gen := p.userID, p.generation
	if userID == "" {
		p.mu.Unlock()
		return dispatch.ErrNoIdentity
	}
	p.loading = true
	p.mu.Unlock()
	p.notify()

	b := &batch{}
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range b.fetchers(p.store, userID) {
		g.Go(func() error { return f.run(gctx) })
	}
	err := g.Wait()

	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		return nil
	}
	p.loading = false
	if err != nil {
		p.errMsg = dispatch.MsgRefreshFailed
	} else {
		b.assign(p, nil)
		p.errMsg = ""
		p.revision++
	}
	p.mu.Unlock()
	p.notify()

	if err != nil {
		p.logger.Warn("Refresh failed", logger.String("user_id", userID), logger.Err(err))
		return &dispatch.OpError{Message: dispatch.MsgRefreshFailed, Err: err}
	}
	return nil
}

func (p *dataProvider) applyBatch(gen uint64, b *batch, ok func(table string) bool) bool {
	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		return false
	}
	b.assign(p, ok)
	p.revision++
	p.mu.Unlock()
	p.notify()
	return true
}

func (p *dataProvider) setLoading(gen uint64, loading bool) bool {
	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		return false
	}
	p.loading = loading
	p.mu.Unlock()
	p.notify()
	return true
}

func (p *dataProvider) setError(gen uint64, msg string) {
	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		return
	}
	p.errMsg = msg
	p.mu.Unlock()
	p.notify()
}

// ClearError resets the shared error field
func (p *dataProvider) ClearError() {
	p.mu.Lock()
	p.errMsg = ""
	p.mu.Unlock()
	p.notify()
}

// identity returns the current user and generation
func (p *dataProvider) identity() (string, uint64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.userID == "" {
		return "", p.generation, dispatch.ErrNoIdentity
	}
	return p.userID, p.generation, nil
}

// fail records msg on the shared error field and returns it as an OpError
func (p *dataProvider) fail(gen uint64, msg string, err error, fields ...logger.Field) error {
	fields = append(fields, logger.String("message", msg), logger.Err(err))
	p.logger.Warn("Dispatch operation failed", fields...)
	p.setError(gen, msg)
	return &dispatch.OpError{Message: msg, Err: err}
}

// mutate applies fn to local state unless the identity changed meanwhile
func (p *dataProvider) mutate(gen uint64, fn func()) bool {
	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		return false
	}
	fn()
	p.revision++
	p.mu.Unlock()
	p.notify()
	return true
}

// State returns the shared loading and error state
func (p *dataProvider) State() models.ProviderState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stateLocked()
}

func (p *dataProvider) stateLocked() models.ProviderState {
	return models.ProviderState{
		UserID:   p.userID,
		Loading:  p.loading,
		Error:    p.errMsg,
		Loaded:   p.loaded,
		Revision: p.revision,
	}
}

// Snapshot returns copies of the state and every collection
func (p *dataProvider) Snapshot() models.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return models.Snapshot{
		ProviderState: p.stateLocked(),
		Companies:     clone(p.companies),
		Drivers:       clone(p.drivers),
		CarTypes:      clone(p.carTypes),
		Projects:      clone(p.projects),
		Payments:      clone(p.payments),
	}
}

func (p *dataProvider) Companies() []models.Company {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.companies)
}

func (p *dataProvider) Drivers() []models.Driver {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.drivers)
}

func (p *dataProvider) CarTypes() []models.CarType {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.carTypes)
}

func (p *dataProvider) Projects() []models.Project {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.projects)
}

func (p *dataProvider) Payments() []models.Payment {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.payments)
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Subscribe returns a channel receiving the latest state after every change.
// Slow readers only ever see the most recent state.
func (p *dataProvider) Subscribe() (<-chan models.ProviderState, func()) {
	ch := make(chan models.ProviderState, 1)

	p.subsMu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = ch
	p.mu.RLock()
	ch <- p.stateLocked()
	p.mu.RUnlock()
	p.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.subsMu.Lock()
			if _, ok := p.subs[id]; ok {
				delete(p.subs, id)
				close(ch)
			}
			p.subsMu.Unlock()
		})
	}
}

// notify pushes the current state to subscribers; never called with mu held
func (p *dataProvider) notify() {
	p.subsMu.Lock()
	defer p.subsMu.Unlock()
	if len(p.subs) == 0 {
		return
	}

	p.mu.RLock()
	st := p.stateLocked()
	p.mu.RUnlock()

	for _, ch := range p.subs {
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- st
		}
	}
}

// Close clears the identity, waits for scheduled refetches and closes subscriptions
func (p *dataProvider) Close() {
	p.ClearIdentity()
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()

	p.subsMu.Lock()
	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
	p.subsMu.Unlock()
}
