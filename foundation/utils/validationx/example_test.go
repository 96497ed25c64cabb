// File: example_test.go
// Title: Example Tests for validationx Documentation
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package validationx_test

import (
	"fmt"

	"github.com/msto63/textkit/foundation/core/validation"
	mdwvalidationx "github.com/msto63/textkit/foundation/utils/validationx"
)

func ExampleIsPhone() {
	fmt.Println(mdwvalidationx.IsPhone("+7 (912) 345-67-89", 7, 11))
	fmt.Println(mdwvalidationx.IsPhoneDefault("12-34"))
	// Output:
	// true
	// false
}

func ExampleLocale() {
	result := validation.NewValidatorChain("general.locale").
		Add(mdwvalidationx.Locale).
		Validate("fr")
	fmt.Println(result.ErrorMessages()[0])
	// Output: general.locale: no catalog for locale fr
}
