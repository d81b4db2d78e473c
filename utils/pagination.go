package utils

import (
	"errors"
	"strconv"

	"github.com/kataras/iris/v12"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
	MaxLimit     = 30
)

type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination reads page/limit query parameters with the listing
// defaults: page >= 1 (default 1), limit within [1,30] (default 5).
func ParsePagination(ctx iris.Context) (Pagination, error) {
	return PaginationFromValues(ctx.URLParam("page"), ctx.URLParam("limit"))
}

func PaginationFromValues(pageRaw, limitRaw string) (Pagination, error) {
	page := DefaultPage
	if pageRaw != "" {
		v, err := strconv.Atoi(pageRaw)
		if err != nil {
			return Pagination{}, errors.New("page must be a number")
		}
		if v < 1 {
			return Pagination{}, errors.New("page should be at least 1")
		}
		page = v
	}

	limit := DefaultLimit
	if limitRaw != "" {
		v, err := strconv.Atoi(limitRaw)
		if err != nil {
			return Pagination{}, errors.New("limit must be a number")
		}
		if v < 1 {
			return Pagination{}, errors.New("limit must be greater than or equal to 1")
		}
		if v > MaxLimit {
			return Pagination{}, errors.New("limit must be less than or equal to 30")
		}
		limit = v
	}

	return Pagination{Page: page, Limit: limit, Offset: limit * (page - 1)}, nil
}
