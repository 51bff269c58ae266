package apierrors

import (
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"todolist/pkg/translator"
)

// JsonErr is the JSON body of every error response.
type JsonErr struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Fields  []FieldErr `json:"fields,omitempty"`
}

// FieldErr describes one failing field of a rejected payload.
type FieldErr struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{Code: code, Message: GetTransErrorMsg(msgKey, lang)}
}

// CreateErrorWithData generates a JsonErr whose message template uses data.
func CreateErrorWithData(code int, msgKey string, lang string, data map[string]interface{}) JsonErr {
	return JsonErr{Code: code, Message: GetTransErrorMsgWithData(msgKey, lang, data)}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return GetTransErrorMsgWithData(msgKey, lang, nil)
}

// GetTransErrorMsgWithData retrieves the translated message, falling back to
// the key itself when no translation exists.
func GetTransErrorMsgWithData(msgKey string, lang string, data map[string]interface{}) string {
	if translator.Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    msgKey,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		// Localize still renders the fallback language when only the
		// requested one lacks the message.
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return msg
		}
		return msgKey
	}
	return msg
}
