package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bverrors "github.com/bookvault/bookvault/internal/errors"
	"github.com/bookvault/bookvault/internal/export"
	"github.com/bookvault/bookvault/internal/model"
	"github.com/bookvault/bookvault/internal/service"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBookService is a mock implementation of the BookService interface
type mockBookService struct {
	book      model.Book
	list      store.ListResult
	summaries []model.BookSummary
	stats     model.Stats
	payload   []byte
	filename  string
	error     error
	lastQuery store.ListQuery
}

func (m *mockBookService) List(_ context.Context, q store.ListQuery) (*store.ListResult, error) {
	m.lastQuery = q
	if m.error != nil {
		return nil, m.error
	}
	return &m.list, nil
}

func (m *mockBookService) FindByID(_ context.Context, _ int64) (*model.Book, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.book, nil
}

func (m *mockBookService) Create(_ context.Context, _ service.BookCreateDto) (*model.Book, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.book, nil
}

func (m *mockBookService) Update(_ context.Context, _ int64, _ service.BookUpdateDto) (*model.Book, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.book, nil
}

func (m *mockBookService) DeleteByID(_ context.Context, _ int64) (*model.Book, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.book, nil
}

func (m *mockBookService) Stats(_ context.Context) (*model.Stats, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.stats, nil
}

func (m *mockBookService) Search(_ context.Context, _ string, _ int) ([]model.BookSummary, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.summaries, nil
}

func (m *mockBookService) Export(_ context.Context, _ export.Format) ([]byte, string, error) {
	if m.error != nil {
		return nil, "", m.error
	}
	return m.payload, m.filename, nil
}

// envelope mirrors the wire shape of the result wrapper for assertions.
type envelope struct {
	Success   bool              `json:"success"`
	Data      json.RawMessage   `json:"data"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors"`
	Timestamp string            `json:"timestamp"`
}

func newTestRouter(svc service.BookService) *chi.Mux {
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env envelope
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func Test_FindByID(t *testing.T) {
	// given
	router := newTestRouter(&mockBookService{book: model.Book{ID: 5, Title: "Dune"}})

	// when
	rr, env := doRequest(t, router, http.MethodGet, "/api/v1/books/5", "")

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Timestamp)
	var got model.Book
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Dune", got.Title)
}

func Test_FindByID_NotFound(t *testing.T) {
	router := newTestRouter(&mockBookService{error: bverrors.ErrBookNotFound})

	rr, env := doRequest(t, router, http.MethodGet, "/api/v1/books/999", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Book not found", env.Message)
}

func Test_FindByID_InvalidID(t *testing.T) {
	router := newTestRouter(&mockBookService{})

	rr, env := doRequest(t, router, http.MethodGet, "/api/v1/books/abc", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "Invalid ID")
}

func Test_Create(t *testing.T) {
	router := newTestRouter(&mockBookService{book: model.Book{ID: 13, Title: "Dune"}})
	body := `{"title":"Dune","author":"Frank Herbert","pages":412,"price":15.99,"stock":8}`

	rr, env := doRequest(t, router, http.MethodPost, "/api/v1/books", body)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Book created successfully", env.Message)
	var got model.Book
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(13), got.ID)
}

func Test_Create_ValidationFailure(t *testing.T) {
	// given a service rejecting the record with per-field errors
	svcErrs := validation.Errors{
		"title": "Title is required",
		"isbn":  "Please enter a valid ISBN-10 or ISBN-13",
	}
	router := newTestRouter(&mockBookService{error: svcErrs})

	// when
	rr, env := doRequest(t, router, http.MethodPost, "/api/v1/books", `{"title":""}`)

	// then the field map is surfaced in the failure envelope
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Equal(t, "Title is required", env.Errors["title"])
	assert.Equal(t, "Please enter a valid ISBN-10 or ISBN-13", env.Errors["isbn"])
}

func Test_Create_MalformedBody(t *testing.T) {
	router := newTestRouter(&mockBookService{})

	rr, env := doRequest(t, router, http.MethodPost, "/api/v1/books", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request body", env.Message)
}

func Test_Update(t *testing.T) {
	router := newTestRouter(&mockBookService{book: model.Book{ID: 5, Title: "Renamed"}})

	rr, env := doRequest(t, router, http.MethodPut, "/api/v1/books/5", `{"title":"Renamed"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Book updated successfully", env.Message)
}

func Test_Update_NotFound(t *testing.T) {
	router := newTestRouter(&mockBookService{error: bverrors.ErrBookNotFound})

	rr, env := doRequest(t, router, http.MethodPut, "/api/v1/books/999", `{"title":"Ghost"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Book not found", env.Message)
}

func Test_DeleteByID_ReturnsRemovedRecord(t *testing.T) {
	router := newTestRouter(&mockBookService{book: model.Book{ID: 5, Title: "Dune"}})

	rr, env := doRequest(t, router, http.MethodDelete, "/api/v1/books/5", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Book deleted successfully", env.Message)
	var got model.Book
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Dune", got.Title)
}

func Test_List_PassesQueryParamsToService(t *testing.T) {
	// given
	mockSvc := &mockBookService{list: store.ListResult{Books: []model.Book{{ID: 1}}}}
	router := newTestRouter(mockSvc)

	// when
	rr, env := doRequest(t, router, http.MethodGet,
		"/api/v1/books?search=orwell&genre=Fiction&price_min=5&price_max=20&sort_by=price&sort_dir=desc&page=2&limit=5", "")

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "orwell", mockSvc.lastQuery.Filters.Search)
	assert.Equal(t, "Fiction", mockSvc.lastQuery.Filters.Genre)
	require.NotNil(t, mockSvc.lastQuery.Filters.PriceMin)
	assert.InDelta(t, 5, *mockSvc.lastQuery.Filters.PriceMin, 0.001)
	require.NotNil(t, mockSvc.lastQuery.Filters.PriceMax)
	assert.InDelta(t, 20, *mockSvc.lastQuery.Filters.PriceMax, 0.001)
	assert.Equal(t, 2, mockSvc.lastQuery.Page)
	assert.Equal(t, 5, mockSvc.lastQuery.Limit)
}

func Test_List_RejectsUnparsableParams(t *testing.T) {
	router := newTestRouter(&mockBookService{})

	testCases := []struct {
		name   string
		target string
	}{
		{name: "bad price", target: "/api/v1/books?price_min=cheap"},
		{name: "bad sort key", target: "/api/v1/books?sort_by=isbn"},
		{name: "bad sort direction", target: "/api/v1/books?sort_dir=up"},
		{name: "bad page", target: "/api/v1/books?page=first"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr, env := doRequest(t, router, http.MethodGet, tc.target, "")

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, env.Success)
		})
	}
}

func Test_Search(t *testing.T) {
	router := newTestRouter(&mockBookService{summaries: []model.BookSummary{
		{ID: 1, Title: "1984", Author: "George Orwell"},
	}})

	rr, env := doRequest(t, router, http.MethodGet, "/api/v1/books/search?q=orwell", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []model.BookSummary
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "1984", got[0].Title)
}

func Test_Stats(t *testing.T) {
	router := newTestRouter(&mockBookService{stats: model.Stats{TotalBooks: 12, TotalValue: 1780.95}})

	rr, env := doRequest(t, router, http.MethodGet, "/api/v1/books/stats", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var got model.Stats
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 12, got.TotalBooks)
}

func Test_Export_CSV(t *testing.T) {
	router := newTestRouter(&mockBookService{
		payload:  []byte("id,title\n1,Dune\n"),
		filename: "books_export_2024-03-15.csv",
	})

	rr, _ := doRequest(t, router, http.MethodGet, "/api/v1/books/export?format=csv", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="books_export_2024-03-15.csv"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "id,title\n1,Dune\n", rr.Body.String())
}

func Test_Export_UnknownFormat(t *testing.T) {
	router := newTestRouter(&mockBookService{})

	rr, env := doRequest(t, router, http.MethodGet, "/api/v1/books/export?format=xml", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, env.Message, "unknown export format")
}

func Test_HealthCheck(t *testing.T) {
	router := newTestRouter(&mockBookService{})

	rr, _ := doRequest(t, router, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}
