// Package store keeps the four persisted collections (orders, products,
// banners, order-id counter) consistent between memory and their JSON
// documents on disk. It is the only component that touches the data files.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Store owns the in-memory working set and its backing files. Create one per
// process with New, call Initialize before serving traffic, and FlushAll on
// shutdown. All operations take the store-wide mutex, so compound mutations
// (allocate id, append order, write both files) are atomic with respect to
// each other even with parallel request handling.
type Store struct {
	mu       sync.Mutex
	orders   collection[[]Order]
	products collection[[]CatalogItem]
	banners  collection[[]CatalogItem]
	counter  collection[counterDoc]
}

func New(dir string) *Store {
	gw := fileGateway{dir: dir}
	return &Store{
		orders:   newCollection(gw, "orders.json", func() []Order { return []Order{} }),
		products: newCollection(gw, "products.json", defaultProducts),
		banners:  newCollection(gw, "banners.json", defaultBanners),
		counter:  newCollection(gw, "counter.json", func() counterDoc { return counterDoc{NextOrderID: counterStart} }),
	}
}

// Initialize is the recovery barrier: it loads every collection (defaulting
// and re-writing any that are missing or corrupt) and reconciles the counter
// against the highest order id already on disk, so an id can never be handed
// out twice even if the counter file was lost or lags behind the orders file.
// An error here means the storage medium is unusable even for writing
// defaults; the process should refuse to start.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.orders.load(); err != nil {
		return fmt.Errorf("store: initialize: %w", err)
	}
	if err := s.products.load(); err != nil {
		return fmt.Errorf("store: initialize: %w", err)
	}
	if err := s.banners.load(); err != nil {
		return fmt.Errorf("store: initialize: %w", err)
	}
	if err := s.counter.load(); err != nil {
		return fmt.Errorf("store: initialize: %w", err)
	}

	var maxID int64
	for _, o := range s.orders.value {
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	if next := maxID + 1; s.counter.value.NextOrderID < next {
		log.Warn().
			Int64("counter", s.counter.value.NextOrderID).
			Int64("reconciled", next).
			Msg("store: counter behind existing orders, reconciling")
		s.counter.value.NextOrderID = next
		if err := s.counter.persist(); err != nil {
			return fmt.Errorf("store: initialize: %w", err)
		}
	}

	log.Info().
		Int("orders", len(s.orders.value)).
		Int("products", len(s.products.value)).
		Int("banners", len(s.banners.value)).
		Int64("next_order_id", s.counter.value.NextOrderID).
		Msg("store: collections loaded")
	return nil
}

// ListCatalog returns snapshots of the products and banners collections.
func (s *Store) ListCatalog() (products, banners []CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CatalogItem(nil), s.products.value...), append([]CatalogItem(nil), s.banners.value...)
}

// ReplaceCatalog overwrites both catalog collections wholesale and persists
// them. Both writes are attempted even if the first fails; the in-memory
// replacement stands regardless (see ErrPersist).
func (s *Store) ReplaceCatalog(products, banners []CatalogItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products.value = products
	s.banners.value = banners

	prodErr := s.products.persist()
	bannErr := s.banners.persist()
	if prodErr != nil {
		return prodErr
	}
	if bannErr != nil {
		return bannErr
	}

	log.Info().Int("products", len(products)).Int("banners", len(banners)).Msg("store: catalog replaced")
	return nil
}

// ListOrders returns a snapshot of all orders in insertion order, oldest first.
func (s *Store) ListOrders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Order(nil), s.orders.value...)
}

// GetOrder returns the order with the given id, or ErrNotFound.
func (s *Store) GetOrder(id int64) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders.value {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

// CreateOrder validates the submission, allocates the next id, appends the
// new order and persists both the orders and counter collections. On a
// persist failure the created order is still returned alongside ErrPersist:
// the order exists in memory and will be visible to subsequent reads.
func (s *Store) CreateOrder(in CreateOrderInput) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateOrderInput(in); err != nil {
		log.Warn().Err(err).Msg("store: order submission rejected")
		return Order{}, err
	}

	id := s.counter.value.NextOrderID
	s.counter.value.NextOrderID++

	o := newOrder(in, id, time.Now().UTC())
	s.orders.value = append(s.orders.value, o)

	if err := s.orders.persist(); err != nil {
		return o, err
	}
	if err := s.counter.persist(); err != nil {
		return o, err
	}

	log.Info().Int64("id", o.ID).Str("order_id", o.OrderID).Float64("total", o.TotalAmount).Msg("store: order created")
	return o, nil
}

// UpdateOrder applies the provided fields to an existing order. Only status
// and notes are mutable; a nil pointer leaves the field untouched.
func (s *Store) UpdateOrder(id int64, status, notes *string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders.value {
		if s.orders.value[i].ID != id {
			continue
		}
		if status != nil {
			s.orders.value[i].Status = *status
		}
		if notes != nil {
			s.orders.value[i].Notes = *notes
		}
		o := s.orders.value[i]
		if err := s.orders.persist(); err != nil {
			return o, err
		}
		log.Info().Int64("id", id).Str("status", o.Status).Msg("store: order updated")
		return o, nil
	}
	return Order{}, ErrNotFound
}

// DeleteOrder removes the order with the given id and persists the orders
// collection. The id is never reallocated: the counter only moves forward.
func (s *Store) DeleteOrder(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders.value {
		if s.orders.value[i].ID != id {
			continue
		}
		s.orders.value = append(s.orders.value[:i], s.orders.value[i+1:]...)
		if err := s.orders.persist(); err != nil {
			return err
		}
		log.Info().Int64("id", id).Msg("store: order deleted")
		return nil
	}
	return ErrNotFound
}

// FlushAll persists every collection. Safe to call repeatedly; used on
// graceful shutdown and available as a retry path after an ErrPersist.
func (s *Store) FlushAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, persist := range []func() error{
		s.orders.persist,
		s.products.persist,
		s.banners.persist,
		s.counter.persist,
	} {
		if err := persist(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
