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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"
)

// StoryContext is the state shared between ordered story scenarios.
// StoryID is written by the create scenario and read by the scenarios that
// edit and delete that story, so it is only meaningful if the create
// scenario ran first.
type StoryContext struct {
	StoryID string

	created []string
	deleted []string
}

// NewStoryContext returns an empty context for one ordered run.
func NewStoryContext() *StoryContext {
	return &StoryContext{}
}

// RecordCreated remembers a created story and makes it the current one.
func (s *StoryContext) RecordCreated(storyID string) {
	s.StoryID = storyID
	s.created = append(s.created, storyID)
}

// RecordDeleted remembers a story was removed by the run.
func (s *StoryContext) RecordDeleted(storyID string) {
	s.deleted = append(s.deleted, storyID)
}

// Leaked returns stories created but not deleted by the run, sorted.
func (s *StoryContext) Leaked() []string {
	created := set.New[string](s.created...)
	deleted := set.New[string](s.deleted...)

	return slices.Sorted(created.Difference(deleted).All())
}

// CleanupLeakedStories deletes any stories a run failed to delete itself.
// Failures are logged, not asserted, so cleanup never masks a scenario failure.
func CleanupLeakedStories(ctx context.Context, client *APIClient, state *StoryContext) {
	for _, storyID := range state.Leaked() {
		GinkgoWriter.Printf("Cleaning up story: %s\n", storyID)

		if _, err := client.DeleteStory(ctx, storyID); err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete story %s: %v\n", storyID, err)
			continue
		}

		state.RecordDeleted(storyID)
	}
}

// ExpectStatus asserts the response status code, reporting the body and
// trace ID on mismatch.
func ExpectStatus(response *Response, expected int, description string) {
	ExpectWithOffset(1, response).NotTo(BeNil(), description)
	ExpectWithOffset(1, response.StatusCode).To(Equal(expected), "%s: body=%s (trace ID: %s)", description, response.String(), response.TraceID)
}

// ExpectBodyContains asserts the response body contains a marker.
func ExpectBodyContains(response *Response, marker string) {
	ExpectWithOffset(1, response.String()).To(ContainSubstring(marker), "response body should contain %q (trace ID: %s)", marker, response.TraceID)
}
