// Package client provides an HTTP implementation of domain.ConverterClient
// for the baseconvd JSON API.
//
// Supported operations:
//   - Listing the supported bases.
//   - Validating a numeral against a base.
//   - Converting a numeral between bases.
//
// All requests accept a context for cancellation and deadlines. A 422 reply
// is returned as an error wrapping radix.ErrInvalidNumber so callers can
// treat remote and local conversions alike; other non-2xx statuses become
// errors carrying the method, path and status text.
package client
