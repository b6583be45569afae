// Package pagination computes the product list's page math: slicing a
// list into pages and the five-slot page window with ellipsis tokens.
package pagination

import "strconv"

// Ellipsis is the gap token in a page window.
const Ellipsis = "..."

const maxVisible = 5

// TotalPages rounds up. Zero items means zero pages.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Clamp keeps page within [1, totalPages] (or 1 when there are no pages).
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the items on the given 1-based page.
func Slice[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		return nil
	}
	start := (page - 1) * perPage
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Window lists the page tokens to display around the current page.
// Up to five numbers are shown; longer ranges collapse the middle or
// the edges into an ellipsis token.
func Window(current, totalPages int) []string {
	if totalPages <= 1 {
		return nil
	}

	if totalPages <= maxVisible {
		pages := make([]string, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, strconv.Itoa(i))
		}
		return pages
	}

	switch {
	case current <= 3:
		return []string{"1", "2", "3", "4", Ellipsis, strconv.Itoa(totalPages)}
	case current >= totalPages-2:
		return []string{
			"1", Ellipsis,
			strconv.Itoa(totalPages - 3), strconv.Itoa(totalPages - 2), strconv.Itoa(totalPages - 1), strconv.Itoa(totalPages),
		}
	default:
		return []string{
			"1", Ellipsis,
			strconv.Itoa(current - 1), strconv.Itoa(current), strconv.Itoa(current + 1),
			Ellipsis, strconv.Itoa(totalPages),
		}
	}
}
