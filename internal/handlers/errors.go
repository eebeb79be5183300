// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/commerce-dashboard/internal/i18n"
	"github.com/javajoker/commerce-dashboard/internal/services"
	"github.com/javajoker/commerce-dashboard/internal/utils"
)

// respondError maps service errors onto the response envelope. notFoundKey
// names the message used when the error wraps services.ErrNotFound.
func respondError(c *gin.Context, err error, notFoundKey string) {
	lang := utils.GetLangFromContext(c)

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ValidationErrorResponse(c, verr.Errors)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, notFoundKey)
	case errors.Is(err, services.ErrPrecondition):
		utils.PreconditionFailedResponse(c, i18n.T(lang, i18n.KeyValidationOutOfRange, "position"))
	case errors.Is(err, services.ErrEmptySelection):
		utils.ConflictResponse(c, "EMPTY_SELECTION", i18n.T(lang, i18n.KeyOrderNoSelection))
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}
