package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// LocaleKey is the gin context key for the negotiated storefront language
const LocaleKey = "locale"

// supportedLanguages lists the storefront languages; English is the default
// and the fallback for untranslated content
var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Hebrew,
}

var localeMatcher = language.NewMatcher(supportedLanguages)

// Locale negotiates the response language from the Accept-Language header
// and stores its base code ("en", "ru", "he") in the context
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
		locale := "en"
		if err == nil && len(tags) > 0 {
			_, index, _ := localeMatcher.Match(tags...)
			base, _ := supportedLanguages[index].Base()
			locale = base.String()
		}
		c.Set(LocaleKey, locale)
		c.Next()
	}
}

// GetLocale returns the negotiated language for the request
func GetLocale(c *gin.Context) string {
	if locale := c.GetString(LocaleKey); locale != "" {
		return locale
	}
	return "en"
}
