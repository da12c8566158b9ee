package config

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Time layouts for completion labels.
const (
	Layout12h = "3:04 PM"
	Layout24h = "15:04"
)

// regions12h lists regions where the 12-hour clock is customary.
var regions12h = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "IN": true, "PH": true,
	"EG": true, "SA": true, "PK": true, "BD": true, "MY": true, "CO": true,
}

// TimeLayout returns the time.Format layout for the configured clock.
func (c TUIConfig) TimeLayout() string {
	switch c.Clock {
	case Clock12h:
		return Layout12h
	case Clock24h:
		return Layout24h
	default:
		return LocaleLayout(LocaleFromEnv())
	}
}

// LocaleFromEnv returns the first non-empty locale setting in POSIX
// precedence order.
func LocaleFromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// LocaleLayout maps a POSIX locale string such as "en_US.UTF-8" to a time
// layout. Unknown or unparsable locales fall back to the 24-hour clock.
func LocaleLayout(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return Layout24h
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Layout24h
	}

	region, conf := tag.Region()
	if conf == language.No {
		return Layout24h
	}

	if regions12h[region.String()] {
		return Layout12h
	}
	return Layout24h
}
