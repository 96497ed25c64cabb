// File: doc.go
// Title: Package Documentation for validationx
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-14

// Package validationx provides concrete validators for the textkit
// validation framework.
//
// Two kinds of API are offered. Plain predicates answer a yes/no question:
//
//	validationx.IsEmail("me@example.com")       // true
//	validationx.IsPhone("+7 (912) 345-67-89", 7, 11) // true
//
// Validators plug into validation.ValidatorChain and report failures with
// rule codes such as VALIDATION_RANGE or VALIDATION_LOCALE:
//
//	chain := validation.NewValidatorChain("general.locale").Add(validationx.Locale)
//	result := chain.Validate("fr")
//
// Both e-mail and phone checks are plausibility checks. IsEmail does not
// follow RFC 5322 and IsPhone only counts the characters left after removing
// whitespace, "+", "(", ")" and "-".
package validationx
