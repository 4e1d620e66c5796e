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
	"flag"
	"time"

	"github.com/spf13/pflag"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Options allows the local API server to be configured on the CLI.
type Options struct {
	// ListenAddress tells the server what to listen on.
	ListenAddress string

	// ReadTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadTimeout time.Duration

	// ReadHeaderTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadHeaderTimeout time.Duration

	// WriteTimeout defines how long we take to respond before we give up.
	WriteTimeout time.Duration

	// Username and Password are the only credentials accepted by the
	// authentication endpoint.
	Username string
	Password string

	// TokenSecret signs bearer tokens, a random one is generated when empty.
	TokenSecret string

	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string

	// TokenDuration is how long issued tokens remain valid.
	TokenDuration time.Duration

	zapOptions zap.Options
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "server-listen-address", ":6080", "API listener address.")
	f.DurationVar(&o.ReadTimeout, "server-read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "server-read-header-timeout", time.Second, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "server-write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
	f.StringVar(&o.Username, "username", "storyspoil", "Username accepted by the authentication endpoint.")
	f.StringVar(&o.Password, "password", "", "Password accepted by the authentication endpoint.")
	f.StringVar(&o.TokenSecret, "token-secret", "", "HMAC secret used to sign bearer tokens.")
	f.StringVar(&o.TokenIssuer, "token-issuer", "StorySpoil_App", "Issuer of bearer tokens.")
	f.DurationVar(&o.TokenDuration, "token-duration", time.Hour, "Lifetime of issued bearer tokens.")

	goflags := flag.NewFlagSet("", flag.ExitOnError)
	o.zapOptions.BindFlags(goflags)

	f.AddGoFlagSet(goflags)
}

// SetupLogging installs the global logger configured by the zap flags.
func (o *Options) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&o.zapOptions)))
}
