// Package model defines the book record and derived read models shared
// across the store, query and service layers.
package model

import "time"

// DefaultCoverImage is used when a book is created without a cover reference.
const DefaultCoverImage = "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=300&h=400&fit=crop"

// Book represents a single book record in the catalog.
// ID is assigned by the store on creation and never changes afterwards.
// PublishedDate is kept in ISO "2006-01-02" form, which also makes it
// sortable as plain text.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	PublishedDate string    `json:"publishedDate"`
	Publisher     string    `json:"publisher"`
	Genre         string    `json:"genre"`
	ISBN          string    `json:"isbn"`
	Pages         int       `json:"pages"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	Description   string    `json:"description,omitempty"`
	CoverImage    string    `json:"coverImage"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookSummary is the projection returned by the autocomplete search.
type BookSummary struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// Summary returns the autocomplete projection of the book.
func (b Book) Summary() BookSummary {
	return BookSummary{ID: b.ID, Title: b.Title, Author: b.Author, Genre: b.Genre}
}

// Stats holds catalog-wide aggregates derived from the full collection.
type Stats struct {
	TotalBooks        int            `json:"totalBooks"`
	TotalValue        float64        `json:"totalValue"`
	TotalStock        int            `json:"totalStock"`
	AveragePrice      float64        `json:"averagePrice"`
	GenreDistribution map[string]int `json:"genreDistribution"`
	LowStockBooks     int            `json:"lowStockBooks"`
	OutOfStockBooks   int            `json:"outOfStockBooks"`
}

// LowStockThreshold is the stock level at or below which a book counts as low stock.
const LowStockThreshold = 10
