package entity

import "math"

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// NewPage normalises number and size. Non-positive values fall back to defaultSize
// and the first page, size is capped at maxSize, and number is capped so the offset fits in an int32.
func NewPage(number, size, defaultSize, maxSize int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	if size > 0 && number > math.MaxInt32/size {
		number = math.MaxInt32 / size
	}

	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PageInfo describes where a page sits in the full result.
type PageInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
}

// NewPageInfo computes paging metadata for total matching rows.
func NewPageInfo(page Page, total int64) PageInfo {
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}

	return PageInfo{
		CurrentPage: page.Number,
		TotalPages:  totalPages,
		TotalItems:  total,
		Limit:       page.Size,
	}
}
