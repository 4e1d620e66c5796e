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
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	servererrors "github.com/storyspoil/api-tests/pkg/server/errors"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var ErrMissingBearerToken = errors.New("missing bearer token")

// Authorizer issues and verifies HS256 signed bearer tokens.
type Authorizer struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

func NewAuthorizer(secret []byte, issuer string, duration time.Duration) *Authorizer {
	return &Authorizer{
		secret:   secret,
		issuer:   issuer,
		duration: duration,
	}
}

// Issue returns a signed token for the subject.
func (a *Authorizer) Issue(subject string) (string, error) {
	now := time.Now()

	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    a.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.duration)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

// Verify parses a token and checks its signature, issuer and lifetime.
func (a *Authorizer) Verify(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	keyFunc := func(token *jwt.Token) (any, error) {
		return a.secret, nil
	}

	if _, err := jwt.ParseWithClaims(raw, claims, keyFunc, jwt.WithIssuer(a.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()); err != nil {
		return nil, err
	}

	return claims, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrMissingBearerToken
	}

	return strings.TrimSpace(token), nil
}

// Middleware rejects requests without a valid bearer token.
func (a *Authorizer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			servererrors.HandleError(w, r, servererrors.HTTPUnauthorized("authorization required").WithError(err))
			return
		}

		claims, err := a.Verify(token)
		if err != nil {
			servererrors.HandleError(w, r, servererrors.HTTPUnauthorized("invalid bearer token").WithError(err))
			return
		}

		ctx := log.IntoContext(r.Context(), log.FromContext(r.Context()).WithValues("user", claims.Subject))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
