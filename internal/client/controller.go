// Package client owns the per-kind request cache for the distress-intel API.
// For each data kind it keeps at most one request in flight, serves the last
// normalized result inside the freshness window, and guarantees that a
// superseded slow response can never overwrite a newer one.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"distress-intel/client-go/internal/config"
	"distress-intel/client-go/internal/models"
	"distress-intel/client-go/internal/normalize"
	"distress-intel/client-go/internal/snapshot"
)

// CacheEntry is the per-kind cache line. Only the controller writes it.
type CacheEntry struct {
	data      models.Result
	fetchedAt time.Time
	loading   bool
	err       error
	cancel    context.CancelFunc
	gen       uint64
}

// View is the read-only state handed to presentation consumers.
type View struct {
	Data        models.Result
	IsLoading   bool
	Err         error
	HasData     bool
	DataQuality string
}

type Controller struct {
	cfg    config.Config
	auth   TokenProvider
	hc     *http.Client
	snaps  snapshot.Store
	logger log.Logger
	cb     *breaker
	now    func() time.Time

	mu        sync.Mutex
	entries   map[models.Kind]*CacheEntry
	wasAuthed bool
	disposed  bool
}

func New(cfg config.Config, auth TokenProvider, snaps snapshot.Store, logger log.Logger) *Controller {
	return &Controller{
		cfg:       cfg,
		auth:      auth,
		hc:        &http.Client{Timeout: cfg.RequestTimeout},
		snaps:     snaps,
		logger:    logger,
		cb:        newBreaker(cfg.CircuitFailLimit, cfg.CircuitCooldown),
		now:       time.Now,
		entries:   make(map[models.Kind]*CacheEntry),
		wasAuthed: auth.IsAuthenticated(),
	}
}

// GetData returns the current state for kind without touching the network.
func (c *Controller) GetData(kind models.Kind) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncAuthLocked()
	e := c.entries[kind]
	if e == nil {
		return View{}
	}
	v := View{Data: e.data, IsLoading: e.loading, Err: e.err}
	if e.data != nil {
		m := e.data.Common()
		v.DataQuality = m.DataQuality
		v.HasData = !m.IsEmpty && !m.Error
	}
	return v
}

// Fetch returns the normalized result for kind, serving the cache inside the
// freshness window unless force is set. Unauthenticated callers get nil with
// no network call. On failure the fallback result is cached as data and the
// error is both recorded and returned.
func (c *Controller) Fetch(ctx context.Context, kind models.Kind, force bool) (models.Result, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown data kind %q", kind)
	}

	c.mu.Lock()
	c.syncAuthLocked()
	if c.disposed {
		c.mu.Unlock()
		return nil, errors.New("controller disposed")
	}
	if !c.auth.IsAuthenticated() {
		c.clearLocked(kind)
		c.mu.Unlock()
		return nil, nil
	}
	e := c.ensureLocked(kind)
	if !force && e.data != nil && !e.fetchedAt.IsZero() && c.now().Sub(e.fetchedAt) < c.cfg.FreshnessWindow {
		data := e.data
		c.mu.Unlock()
		c.logger.Debug().Str("kind", string(kind)).Msg("serving fresh cached result")
		return data, nil
	}
	if e.loading && !force {
		data := e.data
		c.mu.Unlock()
		c.logger.Debug().Str("kind", string(kind)).Msg("request already in flight, serving cached result")
		return data, nil
	}
	// Supersede any in-flight request before issuing ours: last request wins.
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	reqCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.loading = true
	e.gen++
	gen := e.gen
	token := c.auth.Token()
	c.mu.Unlock()

	res, err := c.doFetch(reqCtx, kind, token)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || gen != e.gen {
		// Superseded or torn down: silent no-op.
		return e.data, nil
	}
	e.loading = false
	e.cancel = nil
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return e.data, nil
		}
		e.err = err
		e.data = normalize.Fallback(kind)
		return e.data, err
	}
	e.err = nil
	e.data = res
	e.fetchedAt = c.now()
	c.persistSnapshot(kind, res)
	return res, nil
}

// Refresh forces a refetch for kind.
func (c *Controller) Refresh(ctx context.Context, kind models.Kind) error {
	_, err := c.Fetch(ctx, kind, true)
	return err
}

// Dispose aborts all in-flight requests and drops the cache. The controller
// is unusable afterwards.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	for kind := range c.entries {
		c.clearLocked(kind)
	}
}

// LastSnapshot reads the most recent persisted result for kind, if any.
func (c *Controller) LastSnapshot(ctx context.Context, kind models.Kind) (models.Result, bool) {
	if c.snaps == nil || !kind.Valid() {
		return nil, false
	}
	b, ok := c.snaps.Get(ctx, snapshotKey(kind))
	if !ok {
		return nil, false
	}
	res := models.NewResult(kind)
	if err := json.Unmarshal(b, res); err != nil {
		return nil, false
	}
	return res, true
}

func (c *Controller) doFetch(ctx context.Context, kind models.Kind, token string) (models.Result, error) {
	reqID := uuid.NewString()[:8]
	if !c.cb.allow() {
		c.logger.Warn().Str("kind", string(kind)).Str("request_id", reqID).Msg("circuit open, skipping upstream call")
		return nil, errors.New("unable to connect: upstream temporarily unavailable")
	}
	body, err := c.doGet(ctx, kind.Endpoint(), token)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.cb.fail()
			c.logger.Warn().Str("kind", string(kind)).Str("request_id", reqID).Err(err).Msg("fetch failed, serving fallback")
		}
		return nil, err
	}
	c.cb.success()
	c.logger.Debug().Str("kind", string(kind)).Str("request_id", reqID).Int("bytes", len(body)).Msg("fetched upstream payload")
	return normalize.Process(body, kind), nil
}

// syncAuthLocked clears every cache line on a signed-in to signed-out
// transition so no personal data survives sign-out.
func (c *Controller) syncAuthLocked() {
	authed := c.auth.IsAuthenticated()
	if c.wasAuthed && !authed {
		for kind := range c.entries {
			c.clearLocked(kind)
		}
	}
	c.wasAuthed = authed
}

func (c *Controller) ensureLocked(kind models.Kind) *CacheEntry {
	e := c.entries[kind]
	if e == nil {
		e = &CacheEntry{}
		c.entries[kind] = e
	}
	return e
}

func (c *Controller) clearLocked(kind models.Kind) {
	e := c.entries[kind]
	if e == nil {
		return
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.data = nil
	e.fetchedAt = time.Time{}
	e.loading = false
	e.err = nil
	e.gen++
}

func (c *Controller) persistSnapshot(kind models.Kind, res models.Result) {
	if c.snaps == nil {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.snaps.Set(ctx, snapshotKey(kind), b, c.cfg.SnapshotTTL); err != nil {
		c.logger.Debug().Str("kind", string(kind)).Err(err).Msg("snapshot write failed")
	}
}

func snapshotKey(kind models.Kind) string {
	return "snapshot:v1:" + string(kind)
}
