// Package repository owns the in-memory state and its persistence. The
// state itself is the source of truth; the keyed store underneath only has
// to survive restarts.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
	"github.com/swiftpos/swift-pos/pkg/keyedstore"
	"github.com/swiftpos/swift-pos/pkg/logger"
)

// collections maps each persisted key to its slot in the state. The
// selector returns a pointer so the same entry serves both encode and
// decode.
var collections = []struct {
	key string
	sel func(s *domain.State) any
}{
	{keyedstore.KeyProducts, func(s *domain.State) any { return &s.Products }},
	{keyedstore.KeySales, func(s *domain.State) any { return &s.Sales }},
	{keyedstore.KeySuppliers, func(s *domain.State) any { return &s.Suppliers }},
	{keyedstore.KeyExpenses, func(s *domain.State) any { return &s.Expenses }},
	{keyedstore.KeyCustomers, func(s *domain.State) any { return &s.Customers }},
	{keyedstore.KeyPurchases, func(s *domain.State) any { return &s.Purchases }},
	{keyedstore.KeyCustomerPayments, func(s *domain.State) any { return &s.CustomerPayments }},
	{keyedstore.KeyCategories, func(s *domain.State) any { return &s.Categories }},
	{keyedstore.KeyCompanyInfo, func(s *domain.State) any { return &s.CompanyInfo }},
	{keyedstore.KeySystemSettings, func(s *domain.State) any { return &s.Settings }},
}

// write is one pending collection document, queued in commit order.
type write struct {
	key  string
	data []byte
}

// Store implements domain.StateStore on top of a keyedstore.Store. Reads
// and mutations run against the in-memory state under a single lock;
// persistence of changed collections happens on a background drainer so a
// slow backend never stalls a cashier. The drainer consumes the queue
// sequentially, so a later write of a key can never be overtaken by an
// earlier one.
type Store struct {
	kv    keyedstore.Store
	mu    sync.RWMutex
	state domain.State

	wg       sync.WaitGroup
	queueMu  sync.Mutex
	queue    []write
	draining bool
}

// NewStore loads the persisted collections into a fresh default state. A
// key that is absent keeps its seeded default; a key that fails to decode
// is logged and skipped rather than aborting startup, so one corrupt
// document never takes the whole till down.
func NewStore(ctx context.Context, kv keyedstore.Store) (*Store, error) {
	state := domain.DefaultState()
	for _, c := range collections {
		data, ok, err := kv.Get(ctx, c.key)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", c.key, err)
		}
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, c.sel(&state)); err != nil {
			logger.Warn(ctx).
				Err(err).
				Str("key", c.key).
				Msg("skipping undecodable collection, keeping default")
		}
	}
	return &Store{kv: kv, state: state}, nil
}

// Update implements domain.StateStore. fn runs on a deep copy; the copy
// becomes the live state only when fn returns nil. Collections whose
// serialized form changed are written to the keyed store asynchronously.
func (s *Store) Update(ctx context.Context, fn func(*domain.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	before := s.encode(ctx, &s.state)
	after := s.encode(ctx, &next)
	s.state = next

	var pending []write
	for i, c := range collections {
		if bytes.Equal(before[i], after[i]) {
			continue
		}
		pending = append(pending, write{key: c.key, data: after[i]})
	}
	s.enqueue(pending)
	return nil
}

// View implements domain.StateStore. fn receives a deep copy, so holding
// on to slices after View returns is safe.
func (s *Store) View(_ context.Context, fn func(domain.State)) {
	s.mu.RLock()
	snapshot := s.state.Clone()
	s.mu.RUnlock()
	fn(snapshot)
}

// Flush blocks until every queued persistence write has finished. Callers
// use it before shutdown and in tests.
func (s *Store) Flush() {
	s.wg.Wait()
}

func (s *Store) encode(ctx context.Context, state *domain.State) [][]byte {
	out := make([][]byte, len(collections))
	for i, c := range collections {
		data, err := json.Marshal(c.sel(state))
		if err != nil {
			// Only non-serializable values get here; the state holds none.
			logger.Error(ctx).Err(err).Str("key", c.key).Msg("failed to encode collection")
			continue
		}
		out[i] = data
	}
	return out
}

// enqueue appends pending writes in commit order and starts the drainer if
// it is not already running.
func (s *Store) enqueue(pending []write) {
	if len(pending) == 0 {
		return
	}
	s.queueMu.Lock()
	s.queue = append(s.queue, pending...)
	s.wg.Add(len(pending))
	start := !s.draining
	s.draining = true
	s.queueMu.Unlock()

	if start {
		go s.drain()
	}
}

// drain persists queued documents one at a time, preserving commit order.
// Failures are logged, not surfaced: the in-memory state already committed
// and the next successful write of the same key heals the store.
func (s *Store) drain() {
	ctx := context.Background()
	for {
		s.queueMu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.queueMu.Unlock()
			return
		}
		w := s.queue[0]
		s.queue = s.queue[1:]
		s.queueMu.Unlock()

		if err := s.kv.Set(ctx, w.key, w.data); err != nil {
			logger.Error(ctx).Err(err).Str("key", w.key).Msg("failed to persist collection")
		} else {
			logger.Debug(ctx).Str("key", w.key).Int("bytes", len(w.data)).Msg("collection persisted")
		}
		s.wg.Done()
	}
}

// RememberExportDir stores the directory chosen for backup exports so the
// next export can reuse it without asking again.
func (s *Store) RememberExportDir(ctx context.Context, dir string) error {
	if err := s.kv.Set(ctx, keyedstore.KeyDirectoryHandle, []byte(dir)); err != nil {
		return fmt.Errorf("failed to remember export directory: %w", err)
	}
	return nil
}

// ExportDir returns the remembered export directory, if any.
func (s *Store) ExportDir(ctx context.Context) (string, bool, error) {
	data, ok, err := s.kv.Get(ctx, keyedstore.KeyDirectoryHandle)
	if err != nil {
		return "", false, fmt.Errorf("failed to load export directory: %w", err)
	}
	return string(data), ok && len(data) > 0, nil
}
