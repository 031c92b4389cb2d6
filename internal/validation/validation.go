// Package validation checks candidate book records as they arrive from a
// form: every field is a raw string, and the result is a map from field
// name to a human-readable message for each field that fails its rule.
// An empty map means the record is acceptable.
package validation

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Form carries the raw field values of a candidate book record.
type Form struct {
	Title         string
	Author        string
	Publisher     string
	PublishedDate string
	Genre         string
	ISBN          string
	Pages         string
	Price         string
	Stock         string
	Description   string
}

// Errors maps a field name to the message describing why it failed.
type Errors map[string]string

// Error makes Errors usable as an error value so the service layer can
// return the field map through its normal error path.
func (e Errors) Error() string {
	return "validation failed"
}

// earliestPublished is the lower bound for a plausible published date.
var earliestPublished = time.Date(1000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Validate applies every field rule independently and collects the
// failures. Rules never short-circuit across fields, so a record with
// several bad fields reports all of them at once.
func Validate(f Form) Errors {
	errs := make(Errors)

	checkText(errs, "title", f.Title, "Title", "Title", 200)
	checkText(errs, "author", f.Author, "Author", "Author name", 100)
	checkText(errs, "publisher", f.Publisher, "Publisher", "Publisher name", 100)
	checkText(errs, "genre", f.Genre, "Genre", "Genre", 50)

	if f.PublishedDate == "" {
		errs["publishedDate"] = "Published date is required"
	} else if d, err := time.Parse("2006-01-02", f.PublishedDate); err != nil {
		errs["publishedDate"] = "Please enter a valid published date"
	} else if d.After(time.Now()) {
		errs["publishedDate"] = "Published date cannot be in the future"
	} else if d.Before(earliestPublished) {
		errs["publishedDate"] = "Please enter a valid published date"
	}

	if strings.TrimSpace(f.ISBN) == "" {
		errs["isbn"] = "ISBN is required"
	} else if !IsValidISBN(strings.TrimSpace(f.ISBN)) {
		errs["isbn"] = "Please enter a valid ISBN format (e.g., 978-0-123456-78-9)"
	}

	if pages, err := strconv.Atoi(f.Pages); f.Pages == "" || err != nil {
		errs["pages"] = "Number of pages is required"
	} else if pages <= 0 {
		errs["pages"] = "Number of pages must be greater than 0"
	} else if pages > 10000 {
		errs["pages"] = "Number of pages seems unrealistic (max: 10,000)"
	}

	// ParseFloat accepts "NaN", which no comparison below would catch.
	if price, err := strconv.ParseFloat(f.Price, 64); f.Price == "" || err != nil || math.IsNaN(price) {
		errs["price"] = "Price is required"
	} else if price <= 0 {
		errs["price"] = "Price must be greater than 0"
	} else if price > 10000 {
		errs["price"] = "Price seems unrealistic (max: $10,000)"
	}

	// Zero is valid stock, so only the empty string counts as missing.
	if stock, err := strconv.Atoi(f.Stock); f.Stock == "" || err != nil {
		errs["stock"] = "Stock quantity is required"
	} else if stock < 0 {
		errs["stock"] = "Stock quantity cannot be negative"
	} else if stock > 100000 {
		errs["stock"] = "Stock quantity seems unrealistic (max: 100,000)"
	}

	if f.Description != "" && utf8.RuneCountInString(f.Description) > 1000 {
		errs["description"] = "Description must be less than 1000 characters"
	}

	return errs
}

// checkText applies the shared required-text rule: non-empty after
// trimming, at least 2 characters and at most max characters.
func checkText(errs Errors, field, value, label, lengthLabel string, max int) {
	trimmed := strings.TrimSpace(value)
	n := utf8.RuneCountInString(trimmed)
	switch {
	case trimmed == "":
		errs[field] = label + " is required"
	case n < 2:
		errs[field] = lengthLabel + " must be at least 2 characters long"
	case n > max:
		errs[field] = lengthLabel + " must be less than " + strconv.Itoa(max) + " characters"
	}
}

// IsValidISBN reports whether the input passes the ISBN-10 or ISBN-13
// checksum after stripping every character except decimal digits and the
// letter X.
func IsValidISBN(isbn string) bool {
	var b strings.Builder
	for _, r := range isbn {
		if (r >= '0' && r <= '9') || r == 'X' || r == 'x' {
			b.WriteRune(r)
		}
	}
	clean := b.String()

	switch len(clean) {
	case 10:
		return isValidISBN10(clean)
	case 13:
		return isValidISBN13(clean)
	default:
		return false
	}
}

// isValidISBN10 checks the modulo-11 ISBN-10 checksum. The first nine
// characters must be digits; the tenth may be a digit or X (value 10).
func isValidISBN10(isbn string) bool {
	sum := 0
	for i := 0; i < 9; i++ {
		d := int(isbn[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		sum += d * (10 - i)
	}

	last := isbn[9]
	switch {
	case last == 'X' || last == 'x':
		sum += 10
	case last >= '0' && last <= '9':
		sum += int(last - '0')
	default:
		return false
	}
	return sum%11 == 0
}

// isValidISBN13 checks the modulo-10 ISBN-13 checksum with alternating
// weights 1 and 3. Every character must be a digit.
func isValidISBN13(isbn string) bool {
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(isbn[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}

	last := isbn[12]
	if last < '0' || last > '9' {
		return false
	}
	check := (10 - sum%10) % 10
	return int(last-'0') == check
}
