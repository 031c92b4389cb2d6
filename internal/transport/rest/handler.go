// Package rest provides HTTP handlers for catalog operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	bverrors "github.com/bookvault/bookvault/internal/errors"
	"github.com/bookvault/bookvault/internal/export"
	"github.com/bookvault/bookvault/internal/query"
	"github.com/bookvault/bookvault/internal/service"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/validation"
	"github.com/bookvault/bookvault/pkg/web"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.BookService
	logger  *slog.Logger
}

// NewHandler creates a new instance of the catalog API with the provided service.
func NewHandler(service service.BookService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/books", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/search", h.Search)
		r.Get("/stats", h.Stats)
		r.Get("/export", h.Export)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// List returns the books matching the search, filter, sort and pagination
// parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	q, ok := h.parseListQuery(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to list books",
		"search", q.Filters.Search, "genre", q.Filters.Genre, "sort_by", q.SortBy)
	result, err := h.service.List(r.Context(), q)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving book list", "error", err)
		web.RespondFailure(w, mLogger, http.StatusInternalServerError, "Failed to fetch books")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved book list", "count", len(result.Books))
	web.RespondData(w, mLogger, http.StatusOK, result, "")
}

// FindByID retrieves a book by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find book by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bverrors.ErrBookNotFound) {
			mLogger.WarnContext(r.Context(), "Book not found", "ID", id)
			web.RespondFailure(w, mLogger, http.StatusNotFound, "Book not found")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving book", "ID", id, "error", err)
		web.RespondFailure(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve book with ID %d", id))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved book", "ID", found.ID, "Title", found.Title)
	web.RespondData(w, mLogger, http.StatusOK, found, "")
}

// Create handles the creation of a new book.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto service.BookCreateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondFailure(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to create book", "title", dto.Title)
	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", fieldErrs)
			web.RespondValidationErrors(w, mLogger, fieldErrs)
			return
		}
		mLogger.ErrorContext(r.Context(), "Error creating book", "error", err)
		web.RespondFailure(w, mLogger, http.StatusInternalServerError, "Failed to create book")
		return
	}
	mLogger.InfoContext(r.Context(), "Book created successfully", "ID", created.ID, "Title", created.Title)
	web.RespondData(w, mLogger, http.StatusCreated, created, "Book created successfully")
}

// Update merges the submitted changes over an existing book.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	var dto service.BookUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondFailure(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to update book", "ID", id)
	updated, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		var fieldErrs validation.Errors
		switch {
		case errors.Is(err, bverrors.ErrBookNotFound):
			mLogger.WarnContext(r.Context(), "Book not found for update", "ID", id)
			web.RespondFailure(w, mLogger, http.StatusNotFound, "Book not found")
		case errors.As(err, &fieldErrs):
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", fieldErrs)
			web.RespondValidationErrors(w, mLogger, fieldErrs)
		default:
			mLogger.ErrorContext(r.Context(), "Error updating book", "ID", id, "error", err)
			web.RespondFailure(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update book with ID %d", id))
		}
		return
	}
	mLogger.InfoContext(r.Context(), "Book updated successfully", "ID", updated.ID, "Title", updated.Title)
	web.RespondData(w, mLogger, http.StatusOK, updated, "Book updated successfully")
}

// DeleteByID deletes a book by its ID and returns the removed record.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to delete book", "ID", id)
	removed, err := h.service.DeleteByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bverrors.ErrBookNotFound) {
			mLogger.WarnContext(r.Context(), "Book not found for deletion", "ID", id)
			web.RespondFailure(w, mLogger, http.StatusNotFound, "Book not found")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting book", "ID", id, "error", err)
		web.RespondFailure(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete book with ID %d", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Book deleted successfully", "ID", id)
	web.RespondData(w, mLogger, http.StatusOK, removed, "Book deleted successfully")
}

// Search returns autocomplete summaries for the given term.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	limit, err := web.QueryInt(r, "limit", 0)
	if err != nil {
		web.RespondFailure(w, mLogger, http.StatusBadRequest, err.Error())
		return
	}

	term := r.URL.Query().Get("q")
	mLogger.DebugContext(r.Context(), "Received search request", "q", term, "limit", limit)
	results, err := h.service.Search(r.Context(), term, limit)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error searching books", "error", err)
		web.RespondFailure(w, mLogger, http.StatusInternalServerError, "Failed to search books")
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, results, "")
}

// Stats returns catalog-wide aggregates.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request for catalog stats")
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error computing catalog stats", "error", err)
		web.RespondFailure(w, mLogger, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, stats, "")
}

// Export streams the full collection as a CSV or JSON download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		web.RespondFailure(w, mLogger, http.StatusBadRequest, err.Error())
		return
	}

	mLogger.DebugContext(r.Context(), "Received export request", "format", format)
	payload, filename, err := h.service.Export(r.Context(), format)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error exporting books", "error", err)
		web.RespondFailure(w, mLogger, http.StatusInternalServerError, "Failed to export books")
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// parseListQuery builds the store query from the request parameters,
// reporting a 400 failure on any unparsable value.
func (h *Handler) parseListQuery(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger) (store.ListQuery, bool) {
	var q store.ListQuery
	params := r.URL.Query()

	q.Filters.Search = params.Get("search")
	q.Filters.Genre = params.Get("genre")
	q.Filters.Author = params.Get("author")

	priceMin, err := web.QueryFloat(r, "price_min")
	if err != nil {
		web.RespondFailure(w, mLogger, http.StatusBadRequest, err.Error())
		return q, false
	}
	priceMax, err := web.QueryFloat(r, "price_max")
	if err != nil {
		web.RespondFailure(w, mLogger, http.StatusBadRequest, err.Error())
		return q, false
	}
	q.Filters.PriceMin = priceMin
	q.Filters.PriceMax = priceMax

	if raw := params.Get("sort_by"); raw != "" {
		key, err := query.ParseSortKey(raw)
		if err != nil {
			web.RespondFailure(w, mLogger, http.StatusBadRequest, err.Error())
			return q, false
		}
		q.SortBy = key
	}
	dir, err := query.ParseDirection(params.Get("sort_dir"))
	if err != nil {
		web.RespondFailure(w, mLogger, http.StatusBadRequest, err.Error())
		return q, false
	}
	q.SortDir = dir

	if q.Page, err = web.QueryInt(r, "page", 1); err != nil {
		web.RespondFailure(w, mLogger, http.StatusBadRequest, err.Error())
		return q, false
	}
	if q.Limit, err = web.QueryInt(r, "limit", 0); err != nil {
		web.RespondFailure(w, mLogger, http.StatusBadRequest, err.Error())
		return q, false
	}
	return q, true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, _ := web.GetRequestID(r.Context())
	return h.logger.With("request_id", reqID)
}
