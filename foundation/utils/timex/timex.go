// File: timex.go
// Title: Spelled-Out Durations
// Description: Renders a number of seconds as days, hours, minutes and
//              seconds with the unit names of a locale catalog.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation with fixed English units
// - 2026-10-13 v0.2.0: Unit names from i18n catalogs, short form

package timex

import (
	"strconv"
	"strings"
	"time"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/i18n"
)

// Unit lengths in seconds
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
)

type unit struct {
	seconds int64
	forms   []string
	short   string
}

func unitsOf(c *i18n.Catalog) []unit {
	d := c.Duration
	return []unit{
		{SecondsPerDay, d.Day, d.Short.Day},
		{SecondsPerHour, d.Hour, d.Short.Hour},
		{SecondsPerMinute, d.Minute, d.Short.Minute},
		{1, d.Second, d.Short.Second},
	}
}

// FormatSeconds spells out seconds as days, hours, minutes and seconds,
// largest first and separated by spaces. Units with a zero count are left
// out, so zero seconds give "". The full form agrees each count with its
// unit name, the short form appends the unit suffix directly:
//
//	FormatSeconds(97200, false, "ru") // "1 день 3 часа"
//	FormatSeconds(97200, true, "ru")  // "1д 3ч"
//
// An empty locale selects i18n.DefaultLocale. Negative values are rejected.
func FormatSeconds(seconds int64, short bool, locale string) (string, error) {
	if seconds < 0 {
		return "", mdwerrors.TimexInvalidDuration(seconds)
	}

	catalog, err := i18n.LoadCatalog(locale)
	if err != nil {
		return "", err
	}

	var parts []string
	rest := seconds
	for _, u := range unitsOf(catalog) {
		if rest < u.seconds {
			continue
		}
		n := rest / u.seconds
		rest %= u.seconds

		count := strconv.FormatInt(n, 10)
		if short {
			parts = append(parts, count+u.short)
		} else {
			parts = append(parts, count+" "+catalog.Agree(n, u.forms))
		}
	}
	return strings.Join(parts, " "), nil
}

// FormatDuration is FormatSeconds for a time.Duration. Fractions of a
// second are truncated.
func FormatDuration(d time.Duration, short bool, locale string) (string, error) {
	return FormatSeconds(int64(d/time.Second), short, locale)
}
