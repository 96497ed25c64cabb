// Package filex holds the file-related helpers of textkit.
//
// Package: filex
// Title: File Names, Sizes and Reads
// Description: Human-readable byte sizes in the language of a locale
// catalog, portable file names derived from free text, and
// whole-file reads that fail with structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
// - 2026-10-13 v0.2.0: Locale catalogs and SafeName
//
// # Sizes
//
// FormatSize divides by 1024 while the value is larger than 1024, so
// exactly 1024 is still printed in bytes. Byte counts agree with the number
// in the catalog language; larger units are symbols:
//
//	filex.FormatSize(2, "ru")    // "2 байта"
//	filex.FormatSize(1536, "en") // "1.5 KB"
//
// # Names
//
// SafeName keeps [A-Za-z0-9._-]: Russian letters are transliterated with
// stringx.Translit, diacritics are folded and whitespace runs become "-".
//
// # Errors
//
// Read failures carry FILEX_READ_FAILED, negative sizes FILEX_INVALID_SIZE
// and unknown locales I18N_UNKNOWN_LOCALE (see foundation/core/errors).
package filex
