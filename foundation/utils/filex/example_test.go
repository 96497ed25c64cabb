// File: example_test.go
// Title: Example Tests for filex Documentation
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-13

package filex_test

import (
	"fmt"

	mdwfilex "github.com/msto63/textkit/foundation/utils/filex"
)

func ExampleFormatSize() {
	for _, size := range []int64{21, 1024, 1536, 5 << 30} {
		s, _ := mdwfilex.FormatSize(size, "ru")
		fmt.Println(s)
	}
	s, _ := mdwfilex.FormatSize(1, "en")
	fmt.Println(s)
	// Output:
	// 21 байт
	// 1024 байта
	// 1.5 Кб
	// 5 ГБ
	// 1 byte
}

func ExampleSafeName() {
	fmt.Println(mdwfilex.SafeName("Отчёт за 2026 год.pdf"))
	// Output: Otchet-za-2026-god.pdf
}
