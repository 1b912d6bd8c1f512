/*
Package errors implements custom error interfaces for timevault.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Errors are registered with a
unique code so that, once wrapped any number of times, they can still be
matched and reported over any transport in a safe manner.

Usage guide:

  errors.Wrap(ErrNotFound, "custom message")

Errors returned by this package can be tested against a registered kind:

  errors.ErrNotFound.Is(err)
*/
package errors
