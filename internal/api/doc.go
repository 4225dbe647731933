// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between browser clients and
// the phrases service, translating HTTP concerns to service calls.
package api
