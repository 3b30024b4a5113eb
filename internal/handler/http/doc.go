// Package http implements the HTTP transport layer of the cipher service.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as CORS, request tracing, access logging, request metrics
// and timeouts are handled in this package before requests are delegated to
// the service layer.
package http
