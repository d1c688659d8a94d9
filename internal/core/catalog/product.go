// Package catalog defines product domain types shared by the gateway,
// stores, and views.
package catalog

import "time"

// Category groups products on the remote catalog.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Product represents a catalog item as served by the API. IDs and
// timestamps are server-assigned; the client never fabricates them.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    Category  `json:"category"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PageCount returns the number of pages needed to show total items at
// pageSize items per page. Always at least 1 so pagination controls have
// a valid page to point at.
func PageCount(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
