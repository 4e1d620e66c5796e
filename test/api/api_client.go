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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/storyspoil/api-tests/pkg/openapi"
)

//go:generate mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

// Doer sends a single HTTP request, *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type APIClient struct {
	baseURL   string
	client    Doer
	authToken string
	config    *TestConfig
	endpoints *Endpoints
}

// Response is the raw outcome of a request.
type Response struct {
	StatusCode int
	Body       []byte
	TraceID    string
}

// String returns the response body.
func (r *Response) String() string {
	return string(r.Body)
}

// DecodeJSON unmarshals the response body.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling response (trace ID: %s): %w", r.TraceID, err)
	}

	return nil
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	// A zero timeout leaves the library default in place.
	return NewAPIClientWithDoer(config, &http.Client{
		Timeout: config.RequestTimeout,
	})
}

// NewAPIClientWithDoer allows the transport to be replaced, e.g. by a mock.
func NewAPIClientWithDoer(config *TestConfig, doer Doer) *APIClient {
	return &APIClient{
		baseURL:   strings.TrimSuffix(config.BaseURL, "/"),
		client:    doer,
		authToken: config.AuthToken,
		config:    config,
		endpoints: NewEndpoints(),
	}
}

func (c *APIClient) SetAuthToken(token string) {
	c.authToken = token
}

func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

// Close releases idle connections held by the transport.
func (c *APIClient) Close() {
	if closer, ok := c.client.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// A new trace ID per request lets a failing request be found in the service logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, expectedStatus int) (*http.Response, []byte, string, error) {
	fullURL := c.baseURL + path

	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, nil, "", fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, nil, traceParent, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return resp, nil, traceParent, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.logRequests() {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.logResponses() && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
		return resp, respBody, traceParent, fmt.Errorf("%w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, expectedStatus, resp.StatusCode, string(respBody), extractTraceID(traceParent))
	}

	return resp, respBody, traceParent, nil
}

func (c *APIClient) send(ctx context.Context, method, path string, query url.Values, body any, expectedStatus int) (*Response, error) {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, traceParent, err := c.doRequest(ctx, method, path, query, reader, expectedStatus)
	if resp == nil {
		return nil, err
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		TraceID:    extractTraceID(traceParent),
	}

	return response, err
}

// Do sends a request with an optional JSON body and query parameters and
// returns the status code and raw body whatever the status.  Only transport
// failures are reported as errors.
func (c *APIClient) Do(ctx context.Context, method, path string, body any, query url.Values) (*Response, error) {
	return c.send(ctx, method, path, query, body, 0)
}

// Authenticate posts the credentials to the login endpoint.
func (c *APIClient) Authenticate(ctx context.Context, username, password string) (*Response, error) {
	request := &openapi.AuthenticationRequest{
		UserName: username,
		Password: password,
	}

	return c.Do(ctx, http.MethodPost, c.endpoints.Authentication(), request, nil)
}

// CreateStory creates a new story.
func (c *APIClient) CreateStory(ctx context.Context, request *openapi.StoryRequest) (*openapi.CreateStoryResponse, error) {
	response, err := c.send(ctx, http.MethodPost, c.endpoints.CreateStory(), nil, request, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating story: %w", err)
	}

	result := &openapi.CreateStoryResponse{}
	if err := response.DecodeJSON(result); err != nil {
		return nil, err
	}

	return result, nil
}

// EditQuery is the query the edit endpoint accepts alongside the path identifier.
func EditQuery(storyID string) url.Values {
	return url.Values{
		"storyId": []string{storyID},
	}
}

// EditStory replaces a story's fields.
func (c *APIClient) EditStory(ctx context.Context, storyID string, request *openapi.StoryRequest) (*openapi.MessageResponse, error) {
	response, err := c.send(ctx, http.MethodPut, c.endpoints.EditStory(storyID), EditQuery(storyID), request, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("editing story: %w", err)
	}

	result := &openapi.MessageResponse{}
	if err := response.DecodeJSON(result); err != nil {
		return nil, err
	}

	return result, nil
}

// ListStories lists all stories.
func (c *APIClient) ListStories(ctx context.Context) (openapi.Stories, error) {
	response, err := c.send(ctx, http.MethodGet, c.endpoints.ListStories(), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}

	var result openapi.Stories
	if err := response.DecodeJSON(&result); err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteStory deletes a story.
func (c *APIClient) DeleteStory(ctx context.Context, storyID string) (*openapi.MessageResponse, error) {
	response, err := c.send(ctx, http.MethodDelete, c.endpoints.DeleteStory(storyID), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("deleting story: %w", err)
	}

	result := &openapi.MessageResponse{}
	if err := response.DecodeJSON(result); err != nil {
		return nil, err
	}

	return result, nil
}
