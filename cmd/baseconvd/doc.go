// Package main runs baseconvd, the HTTP server for the base converter page
// and its JSON API.
//
// HTTP API
//
//	GET /
//	    The converter page.
//
//	GET /api/bases
//	    The supported bases with radix, display name and short label.
//
//	GET /api/validate?value=V&base=B
//	    {"valid": bool, "first_invalid": offset} for V under B.
//
//	GET /api/convert?value=V&from=A&to=B
//	    {"result": "..."} on success, 422 when V is not a number in A,
//	    400 for an unknown base.
//
// Behaviour
//
//   - The server keeps no state; the page posts its state with each request.
//   - Configuration comes from BASECONV_* environment variables; the default
//     listen address is :8080.
//   - An access log records method, path, remote, status, bytes and duration
//     for each request.
//   - SIGINT or SIGTERM triggers a graceful shutdown.
package main
