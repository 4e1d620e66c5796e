/*
Copyright 2026 the StorySpoil Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package errors

import (
	goerrors "errors"
	"net/http"

	"github.com/storyspoil/api-tests/pkg/openapi"
	"github.com/storyspoil/api-tests/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Error is returned by handlers and rendered as a JSON message envelope
// with the associated status code.
type Error struct {
	// status is the HTTP status code.
	status int

	// message is returned to the client verbatim.
	message string

	// err is an optional underlying cause, logged but never returned
	// to the client.
	err error
}

func newError(status int, message string) *Error {
	return &Error{
		status:  status,
		message: message,
	}
}

// WithError attaches a cause for logging.
func (e *Error) WithError(err error) *Error {
	e.err = err

	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}

	return e.message
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode returns the HTTP status of the error.
func (e *Error) StatusCode() int {
	return e.status
}

// Write renders the error to the client.
func (e *Error) Write(w http.ResponseWriter, r *http.Request) {
	log.FromContext(r.Context()).V(1).Info("request error", "status", e.status, "error", e.Error())

	util.WriteJSONResponse(w, r, e.status, &openapi.MessageResponse{Msg: e.message})
}

func HTTPBadRequest(message string) *Error {
	return newError(http.StatusBadRequest, message)
}

func HTTPUnauthorized(message string) *Error {
	return newError(http.StatusUnauthorized, message)
}

func HTTPNotFound(message string) *Error {
	return newError(http.StatusNotFound, message)
}

func HTTPServerError(message string) *Error {
	return newError(http.StatusInternalServerError, message)
}

// HandleError renders any error.  Errors not raised by this package are
// logged and reported as a generic server error.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var httpError *Error

	if goerrors.As(err, &httpError) {
		httpError.Write(w, r)
		return
	}

	log.FromContext(r.Context()).Error(err, "unhandled error")

	HTTPServerError("unhandled error").Write(w, r)
}
