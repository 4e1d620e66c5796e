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
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Logger attaches a request scoped logger to the context and logs each
// request once it completes.
func Logger(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLogger := logger.WithValues("method", r.Method, "path", r.URL.Path)

			if id := middleware.GetReqID(r.Context()); id != "" {
				requestLogger = requestLogger.WithValues("requestID", id)
			}

			if traceParent := r.Header.Get("Traceparent"); traceParent != "" {
				requestLogger = requestLogger.WithValues("traceparent", traceParent)
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(log.IntoContext(r.Context(), requestLogger)))

			requestLogger.Info("request", "status", ww.Status(), "duration", time.Since(start))
		})
	}
}
