// Package timex spells out durations in the language of a locale catalog.
//
// Package: timex
// Title: Spelled-Out Durations
// Description: FormatSeconds and FormatDuration render a duration as days,
// hours, minutes and seconds, either with full unit names that
// agree with their counts or with short suffixes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
// - 2026-10-13 v0.2.0: Locale catalogs
//
// Usage:
//
//	s, err := timex.FormatSeconds(3725, false, "ru") // "1 час 2 минуты 5 секунд"
//	s, err = timex.FormatSeconds(3725, true, "en")   // "1h 2m 5s"
//
// Agreement follows the CLDR plural rules of the locale through
// foundation/core/i18n. Negative durations fail with
// TIMEX_INVALID_DURATION.
package timex
