// Package http implements the REST transport of the timetable service.
//
// It wires routes, request handlers and middleware. Middleware resolves the
// caller's principal from a bearer token or the session cookie, tags request
// logs with a trace id and compresses JSON responses. Authorization itself is
// left to the service layer's guard.
package http
