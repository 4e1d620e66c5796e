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

package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storyspoil/api-tests/pkg/openapi"
	servererrors "github.com/storyspoil/api-tests/pkg/server/errors"
)

// Validator checks requests against the API schema before they reach a handler.
type Validator struct {
	schema *openapi.Schema
}

func NewValidator(schema *openapi.Schema) *Validator {
	return &Validator{
		schema: schema,
	}
}

// Middleware must be installed per route (e.g. chi's With) so the route
// pattern and URL parameters have been resolved by the time it runs.
func (v *Validator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			next.ServeHTTP(w, r)
			return
		}

		params := map[string]string{}

		for i, key := range rctx.URLParams.Keys {
			params[key] = rctx.URLParams.Values[i]
		}

		if err := v.schema.ValidateRequest(r.Context(), r, rctx.RoutePattern(), params); err != nil {
			servererrors.HandleError(w, r, servererrors.HTTPBadRequest("request validation failed").WithError(err))
			return
		}

		next.ServeHTTP(w, r)
	})
}
