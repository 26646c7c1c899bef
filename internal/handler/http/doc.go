// Package http implements the local control API of the trace-warning client.
//
// It exposes route wiring, request handlers and middleware. Request tracing
// and access logging are applied to every route before requests are
// delegated to the service layer; Prometheus metrics are served as-is.
package http
