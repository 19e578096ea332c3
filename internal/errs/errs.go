// Package errs defines the error types returned to API clients.
//
// Every failure leaves the API in one shape:
//
//	{ "success": false, "error": "<category>", "message": "<detail>" }
//
// HTTPError is that envelope. Handlers and services return it as a plain
// error and the global error handler writes it out.
package errs
