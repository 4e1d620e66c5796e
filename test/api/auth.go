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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// TokenOptions describes where a bearer token comes from.  A non-blank
// StaticToken is used verbatim, otherwise Username and Password are
// exchanged for a token at the login endpoint.
type TokenOptions struct {
	StaticToken string
	Username    string
	Password    string
}

// ResolveToken produces the bearer token used for every subsequent request.
// Authentication failures are reported as *AuthenticationError; transport
// failures are returned as is.  Tokens are never refreshed.
func ResolveToken(ctx context.Context, client *APIClient, options TokenOptions) (string, error) {
	if token := strings.TrimSpace(options.StaticToken); token != "" {
		return token, nil
	}

	response, err := client.Authenticate(ctx, options.Username, options.Password)
	if err != nil {
		return "", fmt.Errorf("requesting access token: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return "", &AuthenticationError{
			Err:        ErrAuthenticationFailed,
			StatusCode: response.StatusCode,
			Body:       response.String(),
		}
	}

	// Decode loosely, the response may carry other fields.
	var content map[string]any

	if err := json.Unmarshal(response.Body, &content); err != nil {
		return "", &AuthenticationError{
			Err:        fmt.Errorf("%w: %w", ErrAuthenticationResponseMalformed, err),
			StatusCode: response.StatusCode,
			Body:       response.String(),
		}
	}

	token, _ := content["accessToken"].(string)

	if strings.TrimSpace(token) == "" {
		return "", &AuthenticationError{
			Err:        ErrAuthenticationResponseMalformed,
			StatusCode: response.StatusCode,
			Body:       response.String(),
		}
	}

	return token, nil
}
