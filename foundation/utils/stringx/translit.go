// File: translit.go
// Title: Russian Transliteration
// Description: Maps Russian Cyrillic letters to Latin. The upper-case half of
//              the table is derived from the lower-case half on first use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-04
//
// Change History:
// - 2026-10-04 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

var translitLower = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sh", 'ъ': "",
	'ы': "i", 'ь': "", 'э': "e", 'ю': "ju", 'я': "ya",
}

var (
	translitOnce     sync.Once
	translitReplacer *strings.Replacer
)

func buildTranslit() {
	pairs := make([]string, 0, 4*len(translitLower))
	for cyr, lat := range translitLower {
		pairs = append(pairs, string(cyr), lat)

		upper := lat
		if r, size := utf8.DecodeRuneInString(lat); size > 0 {
			upper = string(unicode.ToUpper(r)) + lat[size:]
		}
		pairs = append(pairs, string(unicode.ToUpper(cyr)), upper)
	}
	translitReplacer = strings.NewReplacer(pairs...)
}

// Translit replaces Russian Cyrillic letters with Latin ones
// ("Щука" becomes "Shuka"). Other characters are kept.
func Translit(s string) string {
	translitOnce.Do(buildTranslit)
	return translitReplacer.Replace(s)
}
