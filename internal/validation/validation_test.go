package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// validForm returns a candidate record that passes every rule.
func validForm() Form {
	return Form{
		Title:         "The Great Gatsby",
		Author:        "F. Scott Fitzgerald",
		Publisher:     "Charles Scribner's Sons",
		PublishedDate: "1925-04-10",
		Genre:         "Fiction",
		ISBN:          "978-0-7432-7356-5",
		Pages:         "180",
		Price:         "12.99",
		Stock:         "25",
		Description:   "A classic American novel.",
	}
}

func Test_Validate_AcceptsValidRecord(t *testing.T) {
	// given
	form := validForm()
	// when
	errs := Validate(form)
	// then
	assert.Empty(t, errs)
}

func Test_Validate_RequiredFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(f *Form)
		field  string
	}{
		{name: "missing title", mutate: func(f *Form) { f.Title = "" }, field: "title"},
		{name: "whitespace title", mutate: func(f *Form) { f.Title = "   " }, field: "title"},
		{name: "missing author", mutate: func(f *Form) { f.Author = "" }, field: "author"},
		{name: "missing publisher", mutate: func(f *Form) { f.Publisher = "" }, field: "publisher"},
		{name: "missing genre", mutate: func(f *Form) { f.Genre = "" }, field: "genre"},
		{name: "missing published date", mutate: func(f *Form) { f.PublishedDate = "" }, field: "publishedDate"},
		{name: "missing isbn", mutate: func(f *Form) { f.ISBN = "" }, field: "isbn"},
		{name: "missing pages", mutate: func(f *Form) { f.Pages = "" }, field: "pages"},
		{name: "missing price", mutate: func(f *Form) { f.Price = "" }, field: "price"},
		{name: "missing stock", mutate: func(f *Form) { f.Stock = "" }, field: "stock"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			form := validForm()
			tc.mutate(&form)
			// when
			errs := Validate(form)
			// then
			assert.Contains(t, errs, tc.field)
			assert.Len(t, errs, 1)
		})
	}
}

func Test_Validate_FieldRules(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	testCases := []struct {
		name    string
		mutate  func(f *Form)
		field   string
		message string
	}{
		{
			name:    "title too short",
			mutate:  func(f *Form) { f.Title = "A" },
			field:   "title",
			message: "Title must be at least 2 characters long",
		},
		{
			name:    "title too long",
			mutate:  func(f *Form) { f.Title = strings.Repeat("a", 201) },
			field:   "title",
			message: "Title must be less than 200 characters",
		},
		{
			name:    "author too long",
			mutate:  func(f *Form) { f.Author = strings.Repeat("a", 101) },
			field:   "author",
			message: "Author name must be less than 100 characters",
		},
		{
			name:    "genre too long",
			mutate:  func(f *Form) { f.Genre = strings.Repeat("a", 51) },
			field:   "genre",
			message: "Genre must be less than 50 characters",
		},
		{
			name:    "published date in the future",
			mutate:  func(f *Form) { f.PublishedDate = tomorrow },
			field:   "publishedDate",
			message: "Published date cannot be in the future",
		},
		{
			name:    "published date before year 1000",
			mutate:  func(f *Form) { f.PublishedDate = "0999-12-31" },
			field:   "publishedDate",
			message: "Please enter a valid published date",
		},
		{
			name:    "published date unparsable",
			mutate:  func(f *Form) { f.PublishedDate = "not-a-date" },
			field:   "publishedDate",
			message: "Please enter a valid published date",
		},
		{
			name:    "pages not a number",
			mutate:  func(f *Form) { f.Pages = "abc" },
			field:   "pages",
			message: "Number of pages is required",
		},
		{
			name:    "pages zero",
			mutate:  func(f *Form) { f.Pages = "0" },
			field:   "pages",
			message: "Number of pages must be greater than 0",
		},
		{
			name:    "pages over limit",
			mutate:  func(f *Form) { f.Pages = "10001" },
			field:   "pages",
			message: "Number of pages seems unrealistic (max: 10,000)",
		},
		{
			name:    "price zero",
			mutate:  func(f *Form) { f.Price = "0" },
			field:   "price",
			message: "Price must be greater than 0",
		},
		{
			name:    "price over limit",
			mutate:  func(f *Form) { f.Price = "10000.01" },
			field:   "price",
			message: "Price seems unrealistic (max: $10,000)",
		},
		{
			name:    "price not a number",
			mutate:  func(f *Form) { f.Price = "abc" },
			field:   "price",
			message: "Price is required",
		},
		{
			name:    "price NaN literal",
			mutate:  func(f *Form) { f.Price = "NaN" },
			field:   "price",
			message: "Price is required",
		},
		{
			name:    "price lowercase nan literal",
			mutate:  func(f *Form) { f.Price = "nan" },
			field:   "price",
			message: "Price is required",
		},
		{
			name:    "price positive infinity",
			mutate:  func(f *Form) { f.Price = "+Inf" },
			field:   "price",
			message: "Price seems unrealistic (max: $10,000)",
		},
		{
			name:    "price negative infinity",
			mutate:  func(f *Form) { f.Price = "-Infinity" },
			field:   "price",
			message: "Price must be greater than 0",
		},
		{
			name:    "stock negative",
			mutate:  func(f *Form) { f.Stock = "-1" },
			field:   "stock",
			message: "Stock quantity cannot be negative",
		},
		{
			name:    "stock over limit",
			mutate:  func(f *Form) { f.Stock = "100001" },
			field:   "stock",
			message: "Stock quantity seems unrealistic (max: 100,000)",
		},
		{
			name:    "description too long",
			mutate:  func(f *Form) { f.Description = strings.Repeat("a", 1001) },
			field:   "description",
			message: "Description must be less than 1000 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			form := validForm()
			tc.mutate(&form)
			// when
			errs := Validate(form)
			// then
			assert.Equal(t, tc.message, errs[tc.field])
		})
	}
}

func Test_Validate_ZeroStockIsValid(t *testing.T) {
	form := validForm()
	form.Stock = "0"

	errs := Validate(form)

	assert.NotContains(t, errs, "stock")
	assert.Empty(t, errs)
}

func Test_Validate_CollectsAllFailuresAtOnce(t *testing.T) {
	// given every field is broken
	form := Form{}
	// when
	errs := Validate(form)
	// then all required fields are reported together
	for _, field := range []string{
		"title", "author", "publisher", "genre",
		"publishedDate", "isbn", "pages", "price", "stock",
	} {
		assert.Contains(t, errs, field)
	}
}

func Test_IsValidISBN(t *testing.T) {
	testCases := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{name: "ISBN-13 with hyphens", isbn: "978-0-7432-7356-5", valid: true},
		{name: "ISBN-13 altered check digit", isbn: "978-0-7432-7356-4", valid: false},
		{name: "ISBN-13 without separators", isbn: "9780743273565", valid: true},
		{name: "ISBN-10 with hyphens", isbn: "0-306-40615-2", valid: true},
		{name: "ISBN-10 altered check digit", isbn: "0-306-40615-3", valid: false},
		{name: "ISBN-10 with X check digit", isbn: "0-8044-2957-X", valid: true},
		{name: "ISBN-10 lowercase x check digit", isbn: "0-8044-2957-x", valid: true},
		{name: "ISBN-10 with X in digit position", isbn: "0-30X-40615-2", valid: false},
		{name: "nine digits", isbn: "123456789", valid: false},
		{name: "eleven digits", isbn: "12345678901", valid: false},
		{name: "empty", isbn: "", valid: false},
		{name: "letters only", isbn: "not-an-isbn", valid: false},
		{name: "spaces as separators", isbn: "978 0 7432 7356 5", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidISBN(tc.isbn))
		})
	}
}
