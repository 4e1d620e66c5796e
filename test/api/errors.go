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

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingConfiguration is raised when required settings are absent.
	ErrMissingConfiguration = errors.New("missing required configuration")

	// ErrAuthenticationFailed is raised when the login endpoint does not return 200.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrAuthenticationResponseMalformed is raised when a successful login
	// response carries no usable access token.
	ErrAuthenticationResponseMalformed = errors.New("authentication response malformed")

	// ErrUnexpectedStatus is raised by typed client helpers when the
	// response status differs from the documented success status.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// AuthenticationError means no usable bearer token could be obtained.
// It is fatal to a test suite.
type AuthenticationError struct {
	// Err is one of ErrAuthenticationFailed or ErrAuthenticationResponseMalformed.
	Err error

	// StatusCode and Body are the raw login response, for diagnostics.
	StatusCode int
	Body       string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%v: status code: %d, content: %s", e.Err, e.StatusCode, e.Body)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
