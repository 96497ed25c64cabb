// File: locale.go
// Title: Locale Normalization and Matching
// Description: Turns user-supplied locale strings (BCP 47 tags, POSIX LANG
//              values, Accept-Language lists) into catalog keys.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-01
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation on golang.org/x/text/language

package i18n

import (
	"strings"

	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// cleanPOSIX strips encoding and modifier suffixes from POSIX locale names
// ("de_DE.UTF-8@euro" becomes "de-DE").
func cleanPOSIX(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// NormalizeLocale returns the base language of locale, e.g. "ru" for
// "ru_RU.UTF-8" or "en" for "en-GB".
func NormalizeLocale(locale string) (string, error) {
	cleaned := cleanPOSIX(locale)
	switch strings.ToUpper(cleaned) {
	case "", "C", "POSIX":
		return "", mdwerrors.InvalidFormat(mdwerrors.ModuleI18n, locale, "BCP 47 language tag")
	}

	tag, err := language.Parse(cleaned)
	if err != nil {
		return "", mdwerrors.InvalidFormat(mdwerrors.ModuleI18n, locale, "BCP 47 language tag")
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// MatchLocale picks the best catalog locale for the candidates, which are
// tried in order of preference. Each candidate may be a tag, a POSIX locale
// name or an Accept-Language list. Without a usable match DefaultLocale is
// returned.
func MatchLocale(candidates ...string) string {
	var wanted []language.Tag
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if tags, _, err := language.ParseAcceptLanguage(c); err == nil && len(tags) > 0 {
			wanted = append(wanted, tags...)
			continue
		}
		if tag, err := language.Parse(cleanPOSIX(c)); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 {
		return DefaultLocale
	}

	supported := []language.Tag{language.Make(DefaultLocale)}
	keys := []string{DefaultLocale}
	for _, l := range Locales() {
		if l != DefaultLocale {
			supported = append(supported, language.Make(l))
			keys = append(keys, l)
		}
	}

	_, idx, conf := language.NewMatcher(supported).Match(wanted...)
	if conf == language.No {
		return DefaultLocale
	}
	return keys[idx]
}
