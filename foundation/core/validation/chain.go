// File: chain.go
// Title: Validator Chain Implementation
// Description: Composes validators into one, optionally stopping at the first
//              failure, and attaches a field name to every error it reports.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-06 v0.1.0: Initial validator chain implementation
// - 2026-10-14 v0.2.0: Field names instead of context values

package validation

import "fmt"

// ValidatorChain runs validators in order and combines their results
type ValidatorChain struct {
	validators       []Validator
	field            string
	stopOnFirstError bool
}

// NewValidatorChain creates a chain whose errors are reported for field
func NewValidatorChain(field string) *ValidatorChain {
	return &ValidatorChain{field: field}
}

// Add adds a validator to the chain
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures the chain to stop on the first validation
// error. By default all errors are collected.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate runs the validators and returns the combined result. Errors
// without a field get the chain's field.
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))
	for _, v := range c.validators {
		result := v.Validate(value)
		results = append(results, result)
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}

	combined := Combine(results...)
	for i := range combined.Errors {
		if combined.Errors[i].Field == "" {
			combined.Errors[i].Field = c.field
		}
		if combined.Errors[i].Value == nil {
			combined.Errors[i].Value = value
		}
	}
	return combined
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// Field returns the field the chain reports errors for
func (c *ValidatorChain) Field() string {
	return c.field
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	return fmt.Sprintf("ValidatorChain{field: %s, validators: %d, stopOnFirstError: %v}",
		c.field, len(c.validators), c.stopOnFirstError)
}
