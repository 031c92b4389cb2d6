package store

import (
	"context"
	"sync"
	"time"

	bverrors "github.com/bookvault/bookvault/internal/errors"
	"github.com/bookvault/bookvault/internal/model"
	"github.com/bookvault/bookvault/internal/query"
)

// MemoryStore implements BookStore with an in-memory slice guarded by a
// read-write mutex. IDs come from a monotonic counter, so sequential
// creates can never collide. An optional per-operation delay simulates
// backend latency; the delay runs before the store is touched, so a
// cancelled context never leaves the collection partially mutated.
type MemoryStore struct {
	mu     sync.RWMutex
	books  []model.Book
	nextID int64
	delay  time.Duration
}

// NewMemoryStore creates a store seeded with the given books. The ID
// counter starts past the highest seeded ID.
func NewMemoryStore(seed []model.Book, delay time.Duration) *MemoryStore {
	books := make([]model.Book, len(seed))
	copy(books, seed)

	var maxID int64
	for _, b := range books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return &MemoryStore{
		books:  books,
		nextID: maxID + 1,
		delay:  delay,
	}
}

// List returns the books matching the query. Filtering and sorting run on
// a copy, so the stored collection is never reordered.
func (s *MemoryStore) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	books := make([]model.Book, len(s.books))
	copy(books, s.books)
	s.mu.RUnlock()

	books = query.Filter(books, q.Filters)
	if q.SortBy != "" {
		books = query.Sort(books, q.SortBy, q.SortDir)
	}

	if q.Limit <= 0 {
		return &ListResult{Books: books}, nil
	}

	total := len(books)
	totalPages := (total + q.Limit - 1) / q.Limit
	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return &ListResult{
		Books: books[start:end],
		Pagination: &Pagination{
			Page:       page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// FindByID retrieves a book by its unique identifier.
// Returns ErrBookNotFound if no book exists with the given ID.
func (s *MemoryStore) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, bverrors.ErrBookNotFound
}

// Create appends a new book, assigning the next ID and stamping both
// timestamps. An empty cover image falls back to the default placeholder.
func (s *MemoryStore) Create(ctx context.Context, book model.Book) (*model.Book, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	book.ID = s.nextID
	s.nextID++
	book.CreatedAt = now
	book.UpdatedAt = now
	if book.CoverImage == "" {
		book.CoverImage = model.DefaultCoverImage
	}
	s.books = append(s.books, book)

	created := book
	return &created, nil
}

// Update replaces the stored record in place. The original ID and
// creation timestamp survive the replacement.
func (s *MemoryStore) Update(ctx context.Context, id int64, book model.Book) (*model.Book, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == id {
			book.ID = id
			book.CreatedAt = b.CreatedAt
			book.UpdatedAt = time.Now().UTC()
			s.books[i] = book

			updated := book
			return &updated, nil
		}
	}
	return nil, bverrors.ErrBookNotFound
}

// DeleteByID removes a book and returns the removed record.
// Returns ErrBookNotFound if no book exists with the given ID.
func (s *MemoryStore) DeleteByID(ctx context.Context, id int64) (*model.Book, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == id {
			removed := b
			s.books = append(s.books[:i], s.books[i+1:]...)
			return &removed, nil
		}
	}
	return nil, bverrors.ErrBookNotFound
}

// Stats derives the catalog aggregates in one pass over the collection.
// An empty catalog yields zero aggregates, including an average of zero.
func (s *MemoryStore) Stats(ctx context.Context) (*model.Stats, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.Stats{
		TotalBooks:        len(s.books),
		GenreDistribution: make(map[string]int),
	}
	var priceSum float64
	for _, b := range s.books {
		stats.TotalValue += b.Price * float64(b.Stock)
		stats.TotalStock += b.Stock
		priceSum += b.Price
		stats.GenreDistribution[b.Genre]++
		if b.Stock <= model.LowStockThreshold {
			stats.LowStockBooks++
		}
		if b.Stock == 0 {
			stats.OutOfStockBooks++
		}
	}
	if stats.TotalBooks > 0 {
		stats.AveragePrice = priceSum / float64(stats.TotalBooks)
	}
	return &stats, nil
}

// simulateLatency blocks for the configured delay or until the context is
// cancelled, whichever comes first. It always runs before any lock is
// taken, so cancellation cannot interrupt a mutation mid-flight.
func (s *MemoryStore) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
