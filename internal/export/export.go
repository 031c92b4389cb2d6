// Package export serializes the book collection into downloadable form.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/bookvault/bookvault/internal/model"
)

// Format names a supported export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat converts a raw string into a Format.
// An empty string defaults to JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// ContentType returns the MIME type to serve the format with.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/json"
}

// Filename builds the download file name for the given day,
// e.g. books_export_2026-08-31.csv.
func (f Format) Filename(now time.Time) string {
	return fmt.Sprintf("books_export_%s.%s", now.Format("2006-01-02"), f)
}

// csvHeader is the column order of the CSV export.
var csvHeader = []string{
	"id", "title", "author", "publishedDate", "publisher", "genre",
	"isbn", "pages", "price", "stock", "description", "coverImage",
}

// Write serializes the books in the given format.
func Write(w io.Writer, format Format, books []model.Book) error {
	if format == FormatCSV {
		return writeCSV(w, books)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(books)
}

// writeCSV emits one header row plus one row per book. encoding/csv
// quotes any value containing a comma, quote or newline.
func writeCSV(w io.Writer, books []model.Book) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, b := range books {
		row := []string{
			strconv.FormatInt(b.ID, 10),
			b.Title,
			b.Author,
			b.PublishedDate,
			b.Publisher,
			b.Genre,
			b.ISBN,
			strconv.Itoa(b.Pages),
			strconv.FormatFloat(b.Price, 'f', -1, 64),
			strconv.Itoa(b.Stock),
			b.Description,
			b.CoverImage,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
