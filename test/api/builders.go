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
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/storyspoil/api-tests/pkg/openapi"

	"k8s.io/utils/ptr"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// StoryPayloadBuilder builds story payloads for testing.
type StoryPayloadBuilder struct {
	payload openapi.StoryRequest
}

// NewStoryPayload creates a new story payload builder with valid defaults.
func NewStoryPayload() *StoryPayloadBuilder {
	return &StoryPayloadBuilder{
		payload: openapi.StoryRequest{
			Title:       "Story",
			Description: "This is a test story description.",
			Url:         ptr.To(""),
		},
	}
}

// WithTitle sets the story title.
func (b *StoryPayloadBuilder) WithTitle(title string) *StoryPayloadBuilder {
	b.payload.Title = title
	return b
}

// WithDescription sets the story description.
func (b *StoryPayloadBuilder) WithDescription(description string) *StoryPayloadBuilder {
	b.payload.Description = description
	return b
}

// WithURL sets the story URL.
func (b *StoryPayloadBuilder) WithURL(u string) *StoryPayloadBuilder {
	b.payload.Url = ptr.To(u)
	return b
}

// WithoutURL omits the URL from the payload entirely.
func (b *StoryPayloadBuilder) WithoutURL() *StoryPayloadBuilder {
	b.payload.Url = nil
	return b
}

// Build returns the completed story payload.
func (b *StoryPayloadBuilder) Build() *openapi.StoryRequest {
	payload := b.payload

	return &payload
}
