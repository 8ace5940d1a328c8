// Package http provides helpers for writing JSON responses with a consistent envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"
	"sync/atomic"

	perr "folio/internal/platform/errors"
	lumnet "folio/internal/platform/net"
)

// Envelope is the standard response body for all endpoints
// Data marshals as null when absent so failure bodies read {"success":false,"data":null,...}
type Envelope struct {
	Success           bool           `json:"success"`
	StatusCode        int            `json:"status_code"`
	Status            string         `json:"status"`
	Code              perr.ErrorCode `json:"code,omitempty"`
	Error             string         `json:"error,omitempty"`
	RequestID         string         `json:"request_id,omitempty"`
	Data              any            `json:"data"`
	Count             *int           `json:"count,omitempty"`
	RateLimitExceeded bool           `json:"rateLimitExceeded,omitempty"`
}

// verboseErrors toggles full error chains in envelopes (development mode only)
var verboseErrors atomic.Bool

// SetVerboseErrors enables or disables raw error detail in failure envelopes
// keep this off in production so upstream messages never leak verbatim
func SetVerboseErrors(on bool) { verboseErrors.Store(on) }

// errorMessage picks the wire message, or the full chain when verbose
func errorMessage(err error) string {
	w := perr.WireFrom(err)
	if verboseErrors.Load() {
		return err.Error()
	}
	return w.Message
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONStatus writes only a status with an empty object body
func JSONStatus(w stdhttp.ResponseWriter, status int) {
	JSON(w, status, map[string]any{})
}

//
// Effectful helpers (Respond*) for classic handlers
//

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	reqID := lumnet.RequestID(r.Context())
	JSON(w, stdhttp.StatusOK, Envelope{
		Success:    true,
		StatusCode: stdhttp.StatusOK,
		Status:     stdhttp.StatusText(stdhttp.StatusOK),
		RequestID:  reqID,
		Data:       data,
	})
}

// RespondCount writes a 200 envelope with data and an item count
func RespondCount(w stdhttp.ResponseWriter, r *stdhttp.Request, data any, count int) {
	reqID := lumnet.RequestID(r.Context())
	JSON(w, stdhttp.StatusOK, Envelope{
		Success:    true,
		StatusCode: stdhttp.StatusOK,
		Status:     stdhttp.StatusText(stdhttp.StatusOK),
		RequestID:  reqID,
		Data:       data,
		Count:      &count,
	})
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	reqID := lumnet.RequestID(r.Context())
	status := perr.HTTPStatus(err)
	wr := perr.WireFrom(err)
	JSON(w, status, Envelope{
		Success:           false,
		StatusCode:        status,
		Status:            stdhttp.StatusText(status),
		Code:              wr.Code,
		Error:             errorMessage(err),
		RequestID:         reqID,
		RateLimitExceeded: perr.RateLimited(err),
	})
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// Count carries the list length for collection endpoints
	Count *int
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	reqID := lumnet.RequestID(r.Context())

	// If Body is an error, derive status from error *before* building the envelope
	if err, ok := resp.Body.(error); ok && err != nil {
		status = perr.HTTPStatus(err)
		wr := perr.WireFrom(err)
		JSON(w, status, Envelope{
			Success:           false,
			StatusCode:        status,
			Status:            stdhttp.StatusText(status),
			Code:              wr.Code,
			Error:             errorMessage(err),
			RequestID:         reqID,
			RateLimitExceeded: perr.RateLimited(err),
		})
		return
	}

	// success path
	JSON(w, status, Envelope{
		Success:    true,
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  reqID,
		Data:       resp.Body,
		Count:      resp.Count,
	})
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// OKCount returns a 200 response carrying a list count
func OKCount(data any, count int) Response {
	return Response{Status: stdhttp.StatusOK, Body: data, Count: &count}
}

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Data is an alias for OK
func Data(v any) Response { return OK(v) }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
