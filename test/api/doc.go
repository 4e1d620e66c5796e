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

// Package api provides integration test utilities for the StorySpoil Story API.
//
// # Separate Client Implementation
//
// This package maintains a small hand written HTTP client (APIClient) rather
// than a generated one.  Any change to the remote contract must be mirrored
// here, which keeps API evolution explicit and reviewable.
//
// The client is tailored for integration testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Bearer token bootstrap from a static token or a login call
//   - Direct access to HTTP status codes and response bodies
//
// # Ordered Scenarios
//
// The story scenarios are order dependent: the story created by the first
// scenario is edited and deleted by later ones.  That identifier is carried in
// an explicit StoryContext passed to every scenario function, see Scenarios.
//
// # Configuration
//
// Configuration is read from the environment, optionally seeded from
// test/.env, see LoadTestConfig.  Credentials are never compiled in.
package api
