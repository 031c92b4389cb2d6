// Package query implements the filter and sort pipeline that derives the
// visible, ordered subset of a book collection. All functions are pure:
// the input slice is never mutated.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bookvault/bookvault/internal/model"
)

// Direction selects the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection converts a raw string into a Direction.
// An empty string defaults to ascending.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(s)) {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", s)
	}
}

// SortKey names one of the sortable book fields.
type SortKey string

const (
	SortByTitle         SortKey = "title"
	SortByAuthor        SortKey = "author"
	SortByPublishedDate SortKey = "publishedDate"
	SortByPrice         SortKey = "price"
	SortByStock         SortKey = "stock"
)

// ParseSortKey converts a raw string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByTitle, SortByAuthor, SortByPublishedDate, SortByPrice, SortByStock:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// Filters narrows the visible record set. Zero values are neutral: an
// empty search term matches everything, an empty genre disables the
// genre predicate, and nil price bounds disable the price range.
type Filters struct {
	Search   string
	Genre    string
	Author   string
	PriceMin *float64
	PriceMax *float64
}

// Match reports whether the book passes every configured predicate.
// The free-text search matches case-insensitively against title and author;
// the genre filter requires exact equality.
func (f Filters) Match(b model.Book) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(b.Title), term) &&
			!strings.Contains(strings.ToLower(b.Author), term) {
			return false
		}
	}
	if f.Genre != "" && b.Genre != f.Genre {
		return false
	}
	if f.Author != "" && !strings.Contains(strings.ToLower(b.Author), strings.ToLower(f.Author)) {
		return false
	}
	if f.PriceMin != nil && b.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && b.Price > *f.PriceMax {
		return false
	}
	return true
}

// Filter returns a new slice holding the books that pass f, in their
// original relative order.
func Filter(books []model.Book, f Filters) []model.Book {
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out
}

// Sort returns a new slice ordered by the given key and direction.
// The sort is stable, and descending order reverses the comparison rather
// than the final slice, so equal elements keep their pre-sort relative
// order in both directions.
func Sort(books []model.Book, key SortKey, dir Direction) []model.Book {
	out := make([]model.Book, len(books))
	copy(out, books)

	cmp := comparator(key)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Desc {
			c = -c
		}
		return c < 0
	})
	return out
}

// comparator maps a sort key to a typed three-way comparison over books.
// Textual fields are lowercased on both sides before comparing.
func comparator(key SortKey) func(a, b model.Book) int {
	switch key {
	case SortByAuthor:
		return func(a, b model.Book) int { return compareFold(a.Author, b.Author) }
	case SortByPublishedDate:
		return func(a, b model.Book) int { return compareFold(a.PublishedDate, b.PublishedDate) }
	case SortByPrice:
		return func(a, b model.Book) int { return compareFloat(a.Price, b.Price) }
	case SortByStock:
		return func(a, b model.Book) int { return a.Stock - b.Stock }
	default:
		return func(a, b model.Book) int { return compareFold(a.Title, b.Title) }
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
