package httpkit

import (
	"net/http"
)

// GetQuery mounts a query-bound handler under GET
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, Query(h))
}

// Get registers a no-input handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Head registers a no-input handler under HEAD
func Head(r Router, path string, h func(*http.Request) (any, error)) {
	r.Head(path, Call(h))
}

// Options registers a no-input handler under OPTIONS
func Options(r Router, path string, h func(*http.Request) (any, error)) {
	r.Options(path, Call(h))
}
