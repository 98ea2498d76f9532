// Package errs holds the typed errors shared by the orders service.
//
// Types:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value falls outside its bounds
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//   - PersistenceError: a storage failure, never shown to callers
//
// Every type pairs a sentinel (ErrValueIsRequired, ...) with a struct carrying
// details, constructors with and without a cause, and Unwrap. Callers classify
// with errors.Is against the sentinels; IsValidation groups the three value
// errors, which the HTTP adapter answers with 400.
package errs
