// Package web serves the converter page and its JSON API.
//
// Pages
//
//	GET  /                    The converter widget.
//	GET  /fragment/validate   Validity and decimal preview for ?value=&from=.
//	POST /fragment/convert    Result panel for the posted widget form.
//	POST /fragment/swap       Whole widget with bases and values swapped.
//
// The page uses HTMX: every keystroke in the number field requests the
// validate fragment, and the convert and swap buttons post the form. Widget
// state travels in the form, so the server keeps none between requests.
//
// JSON API
//
//	GET /api/bases
//	GET /api/validate?value=&base=
//	GET /api/convert?value=&from=&to=
//
// Unknown bases are rejected with 400 and unparsable numerals with 422.
// Successful JSON replies carry a content-hash ETag and answer a matching
// If-None-Match with 304.
package web
