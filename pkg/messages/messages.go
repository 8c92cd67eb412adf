// Package messages resolves user-facing message keys against the translation
// bundle. Every string a user can see goes through here; internal error text
// never does.
package messages

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/NelsonHennessiAyodeji/altschool-todo/pkg/translator"
)

// JsonErr represents the JSON error body returned by data endpoints.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{code, Get(msgKey, lang, nil)}}
}

// Get retrieves the translated message for a key, rendering optional
// template data. An unknown key falls back to the key itself.
func Get(msgKey string, lang string, data map[string]any) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{MessageID: msgKey}
	if data != nil {
		m.TemplateData = data
	}
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
