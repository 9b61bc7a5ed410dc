// Package i18n resolves the request language and localizes web copy.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "sa_lang"
)

// Localizer provides translated strings.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var (
	supported = []language.Tag{language.AmericanEnglish}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Match returns the best supported tag for raw, reporting whether raw
// parsed at all.
func Match(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default(), false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return Default(), false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default(), false
	}
	return supportedBase(matched), true
}

// ResolveTag determines the best language for the request from the lang
// query parameter, then the language cookie, then Accept-Language. The bool
// reports whether the query selection should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if r.URL != nil {
		if tag, ok := Match(r.URL.Query().Get(LangParam)); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := Match(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			matched, _, _ := matcher.Match(tags...)
			return supportedBase(matched), false
		}
	}
	return Default(), false
}

// ResolveLocalizer returns the localizer and language for a request. An
// explicit resolver takes precedence over request negotiation.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolve func(*http.Request) string) (Localizer, string) {
	if resolve != nil {
		if tag, ok := Match(resolve(r)); ok {
			return Printer(tag), tag.String()
		}
	}
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// LocalizeError returns user-safe copy for err. Typed errors with a
// localization key use the catalog; anything else gets the generic message
// for its kind.
func LocalizeError(loc Localizer, err error) string {
	if err == nil {
		return ""
	}
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = kindKey(apperrors.KindOf(err))
	}
	if loc == nil {
		return key
	}
	return strings.TrimSpace(loc.Sprintf(key))
}

func kindKey(kind apperrors.Kind) string {
	switch kind {
	case apperrors.KindInvalidInput:
		return "error.generic.invalid_input"
	case apperrors.KindUnauthorized:
		return "error.generic.unauthorized"
	case apperrors.KindForbidden:
		return "error.generic.forbidden"
	case apperrors.KindNotFound:
		return "error.generic.not_found"
	case apperrors.KindConflict:
		return "error.generic.conflict"
	case apperrors.KindUnavailable:
		return "error.generic.unavailable"
	default:
		return "error.generic.unknown"
	}
}

// supportedBase strips matcher extensions such as -u-rg so the tag equals one
// of the supported tags.
func supportedBase(tag language.Tag) language.Tag {
	for _, candidate := range supported {
		if base, _ := candidate.Base(); base == mustBase(tag) {
			return candidate
		}
	}
	return Default()
}

func mustBase(tag language.Tag) language.Base {
	base, _ := tag.Base()
	return base
}
