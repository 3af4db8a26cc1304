// Package converter exposes the radix validator and converter as a
// domain.ConverterService, adding base descriptors for selectors and APIs.
package converter
