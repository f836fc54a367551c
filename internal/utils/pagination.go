package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Paginated is the list envelope returned by all collection endpoints
type Paginated struct {
	Items       interface{} `json:"items"`
	TotalItems  int         `json:"totalItems"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// NewPaginated builds a list envelope from items and counts
func NewPaginated(items interface{}, totalItems, page, limit int) Paginated {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Paginated{
		Items:       items,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

// PageParams extracts page and limit query parameters with defaults
func PageParams(c echo.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
