// Package service provides the implementation of catalog business logic.
package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bookvault/bookvault/internal/export"
	"github.com/bookvault/bookvault/internal/model"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/validation"
)

// DefaultSearchLimit bounds the autocomplete result count when the caller
// does not ask for a specific limit.
const DefaultSearchLimit = 10

// BookService defines the methods for managing the book catalog.
type BookService interface {
	// List returns the books matching the query, ordered and optionally paginated.
	List(ctx context.Context, q store.ListQuery) (*store.ListResult, error)

	// FindByID retrieves a single book by its unique identifier.
	// Returns ErrBookNotFound if no book exists with the given ID.
	FindByID(ctx context.Context, id int64) (*model.Book, error)

	// Create validates the candidate record and adds it to the catalog.
	// Returns validation.Errors when any field fails its rule.
	Create(ctx context.Context, dto BookCreateDto) (*model.Book, error)

	// Update merges the given changes over the stored book, validates the
	// merged record and replaces it. Returns ErrBookNotFound or
	// validation.Errors.
	Update(ctx context.Context, id int64, dto BookUpdateDto) (*model.Book, error)

	// DeleteByID removes a book and returns the removed record.
	// Returns ErrBookNotFound if no book exists with the given ID.
	DeleteByID(ctx context.Context, id int64) (*model.Book, error)

	// Stats derives catalog-wide aggregates.
	Stats(ctx context.Context) (*model.Stats, error)

	// Search returns up to limit autocomplete summaries whose title,
	// author or genre contains the term case-insensitively.
	Search(ctx context.Context, term string, limit int) ([]model.BookSummary, error)

	// Export serializes the full collection and returns the payload with
	// its suggested download file name.
	Export(ctx context.Context, format export.Format) ([]byte, string, error)
}

// Service implements BookService on top of a BookStore. Validation is
// folded into the Create and Update boundary, so the store only ever sees
// records that passed every field rule.
type Service struct {
	repository store.BookStore
}

// NewService creates a new catalog service with the provided store.
func NewService(repo store.BookStore) *Service {
	return &Service{
		repository: repo,
	}
}

// BookCreateDto carries the fields of a new book. Numeric fields are
// pointers so an absent value is distinguishable from zero and can be
// reported as missing by the validator.
type BookCreateDto struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	PublishedDate string   `json:"publishedDate"`
	Publisher     string   `json:"publisher"`
	Genre         string   `json:"genre"`
	ISBN          string   `json:"isbn"`
	Pages         *int     `json:"pages"`
	Price         *float64 `json:"price"`
	Stock         *int     `json:"stock"`
	Description   string   `json:"description"`
	CoverImage    string   `json:"coverImage"`
}

// BookUpdateDto carries a partial update. Only non-nil fields are applied
// over the stored record; the merged result is then validated as a whole.
type BookUpdateDto struct {
	Title         *string  `json:"title"`
	Author        *string  `json:"author"`
	PublishedDate *string  `json:"publishedDate"`
	Publisher     *string  `json:"publisher"`
	Genre         *string  `json:"genre"`
	ISBN          *string  `json:"isbn"`
	Pages         *int     `json:"pages"`
	Price         *float64 `json:"price"`
	Stock         *int     `json:"stock"`
	Description   *string  `json:"description"`
	CoverImage    *string  `json:"coverImage"`
}

// List returns the books matching the query.
func (s *Service) List(ctx context.Context, q store.ListQuery) (*store.ListResult, error) {
	result, err := s.repository.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch books: %w", err)
	}
	return result, nil
}

// FindByID retrieves a book by its ID.
// Returns ErrBookNotFound if no book exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch book by ID %d: %w", id, err)
	}
	return book, nil
}

// Create validates the candidate record and stores it.
func (s *Service) Create(ctx context.Context, dto BookCreateDto) (*model.Book, error) {
	if errs := validation.Validate(dto.form()); len(errs) > 0 {
		return nil, errs
	}

	book := model.Book{
		Title:         strings.TrimSpace(dto.Title),
		Author:        strings.TrimSpace(dto.Author),
		PublishedDate: dto.PublishedDate,
		Publisher:     strings.TrimSpace(dto.Publisher),
		Genre:         strings.TrimSpace(dto.Genre),
		ISBN:          strings.TrimSpace(dto.ISBN),
		Pages:         *dto.Pages,
		Price:         *dto.Price,
		Stock:         *dto.Stock,
		Description:   dto.Description,
		CoverImage:    dto.CoverImage,
	}
	created, err := s.repository.Create(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

// Update merges the changes over the stored record, validates the merged
// record and replaces the stored one.
func (s *Service) Update(ctx context.Context, id int64, dto BookUpdateDto) (*model.Book, error) {
	existing, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch book by ID %d: %w", id, err)
	}

	merged := dto.applyTo(*existing)
	if errs := validation.Validate(bookForm(merged)); len(errs) > 0 {
		return nil, errs
	}

	updated, err := s.repository.Update(ctx, id, merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update book with ID %d: %w", id, err)
	}
	return updated, nil
}

// DeleteByID removes a book and returns the removed record.
func (s *Service) DeleteByID(ctx context.Context, id int64) (*model.Book, error) {
	removed, err := s.repository.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete book with ID %d: %w", id, err)
	}
	return removed, nil
}

// Stats derives catalog-wide aggregates.
func (s *Service) Stats(ctx context.Context) (*model.Stats, error) {
	stats, err := s.repository.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute catalog stats: %w", err)
	}
	return stats, nil
}

// Search returns autocomplete summaries for books whose title, author or
// genre contains the term.
func (s *Service) Search(ctx context.Context, term string, limit int) ([]model.BookSummary, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	result, err := s.repository.List(ctx, store.ListQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}

	needle := strings.ToLower(term)
	summaries := make([]model.BookSummary, 0, limit)
	for _, b := range result.Books {
		if len(summaries) == limit {
			break
		}
		if strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) ||
			strings.Contains(strings.ToLower(b.Genre), needle) {
			summaries = append(summaries, b.Summary())
		}
	}
	return summaries, nil
}

// Export serializes the full collection in the given format.
func (s *Service) Export(ctx context.Context, format export.Format) ([]byte, string, error) {
	result, err := s.repository.List(ctx, store.ListQuery{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to export books: %w", err)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, result.Books); err != nil {
		return nil, "", fmt.Errorf("failed to export books: %w", err)
	}
	return buf.Bytes(), format.Filename(time.Now()), nil
}

// form converts the create DTO into the validator's raw-string view.
// Nil numeric fields become empty strings so the validator reports them
// as missing.
func (dto BookCreateDto) form() validation.Form {
	return validation.Form{
		Title:         dto.Title,
		Author:        dto.Author,
		Publisher:     dto.Publisher,
		PublishedDate: dto.PublishedDate,
		Genre:         dto.Genre,
		ISBN:          dto.ISBN,
		Pages:         formatInt(dto.Pages),
		Price:         formatFloat(dto.Price),
		Stock:         formatInt(dto.Stock),
		Description:   dto.Description,
	}
}

// applyTo merges the non-nil changes over the given record.
func (dto BookUpdateDto) applyTo(b model.Book) model.Book {
	if dto.Title != nil {
		b.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.Author != nil {
		b.Author = strings.TrimSpace(*dto.Author)
	}
	if dto.PublishedDate != nil {
		b.PublishedDate = *dto.PublishedDate
	}
	if dto.Publisher != nil {
		b.Publisher = strings.TrimSpace(*dto.Publisher)
	}
	if dto.Genre != nil {
		b.Genre = strings.TrimSpace(*dto.Genre)
	}
	if dto.ISBN != nil {
		b.ISBN = strings.TrimSpace(*dto.ISBN)
	}
	if dto.Pages != nil {
		b.Pages = *dto.Pages
	}
	if dto.Price != nil {
		b.Price = *dto.Price
	}
	if dto.Stock != nil {
		b.Stock = *dto.Stock
	}
	if dto.Description != nil {
		b.Description = *dto.Description
	}
	if dto.CoverImage != nil {
		b.CoverImage = *dto.CoverImage
	}
	return b
}

// bookForm renders a stored record back into the validator's raw-string
// view, used to re-validate the merged result of a partial update.
func bookForm(b model.Book) validation.Form {
	return validation.Form{
		Title:         b.Title,
		Author:        b.Author,
		Publisher:     b.Publisher,
		PublishedDate: b.PublishedDate,
		Genre:         b.Genre,
		ISBN:          b.ISBN,
		Pages:         strconv.Itoa(b.Pages),
		Price:         strconv.FormatFloat(b.Price, 'f', -1, 64),
		Stock:         strconv.Itoa(b.Stock),
		Description:   b.Description,
	}
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
