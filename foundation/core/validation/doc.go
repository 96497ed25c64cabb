// File: doc.go
// Title: Core Validation Framework Package Documentation
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-14

/*
Package validation provides the validation framework used across textkit.

It holds no concrete rules. Those live in foundation/utils/validationx.

A Validator checks one value and returns a ValidationResult listing every
failed rule as a ValidationError with a code, an optional field name and the
offending value. ValidatorChain runs several validators for one field:

	chain := validation.NewValidatorChain("url.max_path_len").
		Add(validationx.Range(1, 1000))
	if err := chain.Validate(cfg.URL.MaxPathLen).ToError(); err != nil {
		return err
	}

ToError turns a failed result into a *mdwerror.Error whose code is the code
of the first failed rule.
*/
package validation
