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

package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

var ErrRouteNotFound = errors.New("route not defined in schema")

//go:embed server.spec.yaml
var spec []byte

// Schema gives access to the embedded API description.
type Schema struct {
	spec *openapi3.T
}

// NewSchema loads and validates the embedded OpenAPI document.
func NewSchema() (*Schema, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("loading openapi schema: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating openapi schema: %w", err)
	}

	s := &Schema{
		spec: doc,
	}

	return s, nil
}

// Spec returns the parsed document.
func (s *Schema) Spec() *openapi3.T {
	return s.spec
}

// Route resolves a templated path, e.g. /api/Story/Edit/{storyId}, and a method
// to the matching operation.
func (s *Schema) Route(method, path string) (*routers.Route, error) {
	pathItem := s.spec.Paths.Find(path)
	if pathItem == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrRouteNotFound, method, path)
	}

	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrRouteNotFound, method, path)
	}

	route := &routers.Route{
		Spec:      s.spec,
		Path:      path,
		PathItem:  pathItem,
		Method:    method,
		Operation: operation,
	}

	return route, nil
}

// ValidateRequest checks the parameters and body of a request against the
// operation bound to the templated path.  Security requirements are not
// checked here, authentication is handled by middleware.  The request body
// is restored after reading so it may be decoded again.
func (s *Schema) ValidateRequest(ctx context.Context, r *http.Request, path string, pathParams map[string]string) error {
	route, err := s.Route(r.Method, path)
	if err != nil {
		return err
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	}

	return openapi3filter.ValidateRequest(ctx, input)
}
