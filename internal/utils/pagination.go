package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ostrovskiy/construction-supervision-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams extracts pagination parameters from the request. The
// second return value is false when the request carries no pagination at
// all, in which case list endpoints return the full result set.
func GetPaginationParams(c *gin.Context) (PaginationParams, bool) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	if pageStr == "" && limitStr == "" {
		return PaginationParams{}, false
	}

	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < constants.MinPage {
		page = constants.MinPage
	}
	if limit < 1 || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, true
}
