// Package widget implements the converter widget's interaction model: edit
// a numeral, pick source and destination bases, convert, swap, and copy the
// result. State is loaded from and saved to a domain.StateStore on every
// call so the CLI and the web page behave the same across requests.
package widget
