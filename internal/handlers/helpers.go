package handlers

import (
	"context"
	"database/sql/driver"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/ostrovskiy/construction-supervision-api/internal/errors"
)

// respondStorageError maps unclassified repository failures. Connection
// loss and cancelled requests are transient, everything else is a 500.
func respondStorageError(c *gin.Context, err error) {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		apierrors.ServiceUnavailable(c, "")
		return
	}
	apierrors.InternalError(c, "")
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
