// Package errors is the standard way textkit packages create errors.
//
// Package: errors
// Title: Standard Error Handling API for textkit
// Description: Module identifiers, module-scoped codes and constructors built
// on top of the core error type. Every error created here carries
// its module and operation in the details map so callers and the
// logger can classify it.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: i18n and config modules
//
// # Usage
//
//	err := errors.NewErrorBuilder(errors.ModuleFilex).
//		Operation("format_size").
//		Detail("size", size).
//		Build()
//
//	if errors.IsModuleError(err, errors.ModuleI18n) {
//		// fall back to the default catalog
//	}
package errors
