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
	"context"
	"sync"
)

// Session is an authenticated client scoped to a whole test suite.
type Session struct {
	BaseURL string
	Token   string
	Client  *APIClient

	closeOnce sync.Once
}

// OpenSession resolves a bearer token once and returns a client that
// attaches it to every request.  The caller must Close the session.
func OpenSession(ctx context.Context, config *TestConfig) (*Session, error) {
	return OpenSessionWithClient(ctx, config, NewAPIClientWithConfig(config))
}

// OpenSessionWithClient is OpenSession with a caller supplied client.
func OpenSessionWithClient(ctx context.Context, config *TestConfig, client *APIClient) (*Session, error) {
	// Login requests are sent unauthenticated.
	client.SetAuthToken("")

	token, err := ResolveToken(ctx, client, config.TokenOptions())
	if err != nil {
		client.Close()
		return nil, err
	}

	client.SetAuthToken(token)

	s := &Session{
		BaseURL: client.baseURL,
		Token:   token,
		Client:  client,
	}

	return s, nil
}

// Close releases the client, it is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(s.Client.Close)
}
