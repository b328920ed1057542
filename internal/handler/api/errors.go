package api

import (
	"log/slog"
	"net/http"

	"gpark/internal/handler/httperr"
	"gpark/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps an error category to a status. Business rejections
// carry their own message; storage and internal failures do not leak details.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch errs.CategoryOf(err) {
	case errs.CategoryValidation:
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.CategoryUnauthorized:
		httperr.AbortWithError(c, http.StatusUnauthorized, err, err.Error(), nil)
	case errs.CategoryNotFound:
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.CategoryConflict:
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.CategoryStorage:
		slog.Error("storage failure", "path", c.FullPath(), "error", err.Error())
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage unavailable, nothing was changed", nil)
	default:
		slog.Error("unexpected error", "path", c.FullPath(), "error", err.Error(),
			"stack", errs.ExtractStackLines(err, 10))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
