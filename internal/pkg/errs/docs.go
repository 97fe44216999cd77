// Package errs holds the error types shared by the domain model and the use cases.
//
// Every type unwraps to a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...),
// so callers classify with errors.Is and read details with errors.As.
package errs
