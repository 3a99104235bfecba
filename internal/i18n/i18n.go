// Package i18n translates the user-facing messages of the label service.
//
// Only messages produced by the service are translated. Messages that come
// from the shipping API are passed through as received.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether the translator has messages for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the translated message for the given key and locale.
// Unknown locales and missing keys fall back to DefaultLocale, then to the key.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the first supported language from the Accept-Language
// header, ignoring region subtags and q-values. Defaults to DefaultLocale.
func GetLocale(c *gin.Context) string {
	return ParseAcceptLanguage(c.GetHeader(AcceptLanguageHeader))
}

// ParseAcceptLanguage is GetLocale for a raw header value.
func ParseAcceptLanguage(header string) string {
	t := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if idx := strings.IndexAny(lang, "-_"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if lang != "" && t.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// Translate is shorthand for translating key for the request's locale.
func Translate(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

func defaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.malformed_request":    "Invalid JSON",
			"error.incomplete_address":   "From and to addresses require name, street1, city, state, zip",
			"error.incomplete_parcel":    "Parcel requires weight, length, width, height",
			"error.label_failed":         "Unable to create label",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.credentials_required": "An API key or bearer token is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.invalid_token":        "Invalid or expired token",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_log_query":    "Invalid log query",
		},
		"pt": {
			"error.malformed_request":    "JSON inválido",
			"error.incomplete_address":   "Os endereços de origem e destino exigem name, street1, city, state, zip",
			"error.incomplete_parcel":    "O pacote exige weight, length, width, height",
			"error.label_failed":         "Não foi possível criar a etiqueta",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.unauthorized":         "Não autorizado",
			"error.credentials_required": "Uma chave de API ou token bearer é obrigatório",
			"error.invalid_api_key":      "Chave de API inválida",
			"error.invalid_token":        "Token inválido ou expirado",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.invalid_log_query":    "Consulta de logs inválida",
		},
		"nl": {
			"error.malformed_request":    "Ongeldige JSON",
			"error.incomplete_address":   "Afzender- en ontvangeradres vereisen name, street1, city, state, zip",
			"error.incomplete_parcel":    "Pakket vereist weight, length, width, height",
			"error.label_failed":         "Kan label niet aanmaken",
			"error.internal_error":       "Er is een onverwachte fout opgetreden",
			"error.unauthorized":         "Niet geautoriseerd",
			"error.credentials_required": "Een API-sleutel of bearer-token is vereist",
			"error.invalid_api_key":      "Ongeldige API-sleutel",
			"error.invalid_token":        "Ongeldig of verlopen token",
			"error.not_found":            "Niet gevonden",
			"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
			"error.invalid_log_query":    "Ongeldige logquery",
		},
	}
}
