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

package server

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"

	"github.com/storyspoil/api-tests/pkg/openapi"
	servererrors "github.com/storyspoil/api-tests/pkg/server/errors"
	"github.com/storyspoil/api-tests/pkg/server/handler"
	"github.com/storyspoil/api-tests/pkg/server/handler/story"
	"github.com/storyspoil/api-tests/pkg/server/middleware"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var ErrMissingPassword = errors.New("a password is required")

type Server struct {
	// Options are server specific options e.g. listener address etc.
	Options Options
}

func (s *Server) AddFlags(flags *pflag.FlagSet) {
	s.Options.AddFlags(flags)
}

func (s *Server) SetupLogging() {
	s.Options.SetupLogging()
}

func (s *Server) tokenSecret() ([]byte, error) {
	if s.Options.TokenSecret != "" {
		return []byte(s.Options.TokenSecret), nil
	}

	secret := make([]byte, 32)

	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generating token secret: %w", err)
	}

	return secret, nil
}

// Handler builds the complete HTTP handler: routing, logging, authorization
// and schema validation.
func (s *Server) Handler() (http.Handler, error) {
	if s.Options.Password == "" {
		return nil, ErrMissingPassword
	}

	schema, err := openapi.NewSchema()
	if err != nil {
		return nil, err
	}

	secret, err := s.tokenSecret()
	if err != nil {
		return nil, err
	}

	authorizer := middleware.NewAuthorizer(secret, s.Options.TokenIssuer, s.Options.TokenDuration)
	validator := middleware.NewValidator(schema)

	users := []handler.Credentials{
		{
			Username: s.Options.Username,
			Password: s.Options.Password,
		},
	}

	h := handler.New(story.NewStore(), authorizer, users)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.Logger(log.Log.WithName("api")))
	router.Use(chimiddleware.Recoverer)
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		servererrors.HandleError(w, r, servererrors.HTTPNotFound("resource not found"))
	})

	router.With(validator.Middleware).Post("/api/User/Authentication", h.PostApiUserAuthentication)

	router.Route("/api/Story", func(r chi.Router) {
		r.Use(authorizer.Middleware)

		r.With(validator.Middleware).Post("/Create", h.PostApiStoryCreate)
		r.With(validator.Middleware).Put("/Edit/{storyId}", func(w http.ResponseWriter, r *http.Request) {
			storyID, err := openapi.BindStoryID(chi.URLParam(r, "storyId"))
			if err != nil {
				servererrors.HandleError(w, r, servererrors.HTTPBadRequest("invalid story identifier").WithError(err))
				return
			}

			h.PutApiStoryEditStoryId(w, r, storyID)
		})
		r.Get("/All", h.GetApiStoryAll)
		r.Delete("/Delete/{storyId}", func(w http.ResponseWriter, r *http.Request) {
			storyID, err := openapi.BindStoryID(chi.URLParam(r, "storyId"))
			if err != nil {
				servererrors.HandleError(w, r, servererrors.HTTPBadRequest("invalid story identifier").WithError(err))
				return
			}

			h.DeleteApiStoryDeleteStoryId(w, r, storyID)
		})
	})

	return router, nil
}

// Run serves the API until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	logger := log.FromContext(ctx)

	h, err := s.Handler()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              s.Options.ListenAddress,
		ReadTimeout:       s.Options.ReadTimeout,
		ReadHeaderTimeout: s.Options.ReadHeaderTimeout,
		WriteTimeout:      s.Options.WriteTimeout,
		Handler:           h,
	}

	go func() {
		<-ctx.Done()

		// Allow a new context to be used for graceful shutdown.
		//nolint:contextcheck
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error(err, "server shutdown error")
		}
	}()

	logger.Info("listening", "address", s.Options.ListenAddress)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
