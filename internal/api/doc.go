// Package api implements the HTTP handlers of the e-learning API. Handlers
// decode and validate requests, call the service layer, and translate results
// and errors into JSON responses. Internal error details never reach the
// client; they are logged after redaction.
package api
