// Package error provides the structured error type used across textkit.
//
// An Error carries a message, an optional cause, a Code, a Severity and a
// free-form details map. Errors are built fluently:
//
//	err := error.New("catalog not found").
//		WithCode(error.CodeUnknownLocale).
//		WithDetail("locale", "fr")
//
// Wrap keeps the code, severity and details of a wrapped *Error so the
// classification survives as the error travels up the call stack. Standard
// library helpers (errors.Is, errors.As) work through Unwrap.
package error
