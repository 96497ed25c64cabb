// File: size.go
// Title: Human-Readable Byte Sizes
// Description: Formats byte counts with the unit names of a locale catalog.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation with fixed English units
// - 2026-10-13 v0.2.0: Unit names from i18n catalogs

package filex

import (
	"math"
	"strconv"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/i18n"
)

// SizeStep is the factor between two adjacent size units
const SizeStep = 1024

// FormatSize renders size as "N unit" with the unit names of locale. The
// value is divided by 1024 while it is larger than 1024 and a larger unit
// exists, so 1024 stays in bytes. Fractions are rounded to one decimal
// place and a trailing ".0" is dropped. Only bytes agree with the number:
//
//	FormatSize(1024, "ru") // "1024 байта"
//	FormatSize(1536, "ru") // "1.5 Кб"
//
// An empty locale selects i18n.DefaultLocale. Negative sizes are rejected.
func FormatSize(size int64, locale string) (string, error) {
	if size < 0 {
		return "", mdwerrors.FilexInvalidSize(size)
	}

	catalog, err := i18n.LoadCatalog(locale)
	if err != nil {
		return "", err
	}

	units := catalog.Size.Units
	value := float64(size)
	exp := 0
	for value > SizeStep && exp < len(units) {
		value /= SizeStep
		exp++
	}

	if exp == 0 {
		return strconv.FormatInt(size, 10) + " " + catalog.Agree(size, catalog.Size.Bytes), nil
	}

	rounded := math.Round(value*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + units[exp-1], nil
}
