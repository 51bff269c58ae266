package handlers

import (
	"errors"
	"net/http"
	"strings"

	"todolist/internal/core/domain"
	"todolist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var fieldMessageKeys = map[string]string{
	domain.ReasonRequired:        apierrors.MsgFieldRequired,
	domain.ReasonInvalidType:     apierrors.MsgFieldInvalidType,
	domain.ReasonInvalidValue:    apierrors.MsgFieldInvalidValue,
	domain.ReasonTooLong:         apierrors.MsgFieldTooLong,
	domain.ReasonBeforeCreatedAt: apierrors.MsgFieldBeforeCreated,
}

// respondError writes the JSON error matching err. Unexpected errors are
// logged and rendered with the generic fallbackKey message.
func respondError(c *gin.Context, lang string, err error, fallbackKey string, logFields ...zap.Field) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, validationErrorBody(verr, lang))
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
		)
	default:
		zap.L().Error(fallbackKey, append(logFields, zap.Error(err))...)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, fallbackKey, lang),
		)
	}
}

func validationErrorBody(verr *domain.ValidationError, lang string) apierrors.JsonErr {
	fields := make([]apierrors.FieldErr, 0, len(verr.Fields))
	details := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		message := apierrors.GetTransErrorMsgWithData(fieldMessageKey(f), lang, map[string]interface{}{
			"Field": f.Field,
		})
		fields = append(fields, apierrors.FieldErr{Field: f.Field, Reason: f.Reason, Message: message})
		details = append(details, message)
	}

	body := apierrors.CreateErrorWithData(http.StatusBadRequest, apierrors.MsgValidationFailed, lang, map[string]interface{}{
		"Details": strings.Join(details, "; "),
	})
	body.Fields = fields
	return body
}

func fieldMessageKey(f domain.FieldError) string {
	if f.Field == domain.FieldCategory && f.Reason == domain.ReasonInvalidValue {
		return apierrors.MsgFieldInvalidCategory
	}
	if key, ok := fieldMessageKeys[f.Reason]; ok {
		return key
	}
	return apierrors.MsgFieldInvalidValue
}
