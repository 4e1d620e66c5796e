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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storyspoil/api-tests/pkg/constants"
	"github.com/storyspoil/api-tests/pkg/openapi"
)

// NonExistentStoryID is well formed but never issued by the service.
const NonExistentStoryID = "NewStory"

// ScenarioFunc performs one request and asserts on its outcome.
type ScenarioFunc func(ctx context.Context, client *APIClient, state *StoryContext)

// Scenario is a named step of the ordered story sequence.
type Scenario struct {
	Name string
	Run  ScenarioFunc
}

// Scenarios returns the story scenarios in the order they must run.
// Editing and deleting the created story depend on the create step.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "should create a new story with the required fields", Run: CreateStory},
		{Name: "should edit the created story", Run: EditStory},
		{Name: "should list all stories", Run: ListStories},
		{Name: "should delete the created story", Run: DeleteStory},
		{Name: "should reject a repeated delete of the same story", Run: DeleteStoryAgain},
		{Name: "should reject a story without the required fields", Run: CreateStoryWithoutRequiredFields},
		{Name: "should not find a non-existent story to edit", Run: EditNonExistentStory},
		{Name: "should be unable to delete a non-existent story", Run: DeleteNonExistentStory},
	}
}

func CreateStory(ctx context.Context, client *APIClient, state *StoryContext) {
	response, err := client.Do(ctx, http.MethodPost, client.Endpoints().CreateStory(), NewStoryPayload().Build(), nil)
	Expect(err).NotTo(HaveOccurred())

	// Capture the identifier before asserting so later scenarios see it
	// even if a body assertion fails.
	created := &openapi.CreateStoryResponse{}
	if response.DecodeJSON(created) == nil && created.StoryId != "" {
		state.RecordCreated(created.StoryId)
	}

	ExpectStatus(response, http.StatusCreated, "Response status should be Created")
	Expect(created.StoryId).NotTo(BeEmpty(), "Story ID should not be null or empty")
	ExpectBodyContains(response, constants.MessageStoryCreated)

	GinkgoWriter.Printf("Created story with ID: %s\n", created.StoryId)
}

func EditStory(ctx context.Context, client *APIClient, state *StoryContext) {
	request := NewStoryPayload().
		WithTitle("Edited Story").
		WithDescription("This is an edited test story description.").
		Build()

	response, err := client.Do(ctx, http.MethodPut, client.Endpoints().EditStory(state.StoryID), request, EditQuery(state.StoryID))
	Expect(err).NotTo(HaveOccurred())

	ExpectStatus(response, http.StatusOK, "Response status should be OK")
	ExpectBodyContains(response, constants.MessageStoryEdited)
}

func ListStories(ctx context.Context, client *APIClient, _ *StoryContext) {
	response, err := client.Do(ctx, http.MethodGet, client.Endpoints().ListStories(), nil, nil)
	Expect(err).NotTo(HaveOccurred())

	ExpectStatus(response, http.StatusOK, "Response status should be OK")

	var stories []any

	Expect(response.DecodeJSON(&stories)).To(Succeed(), "Response should be a JSON list")
	Expect(stories).NotTo(BeEmpty(), "Story list should not be empty")
}

func DeleteStory(ctx context.Context, client *APIClient, state *StoryContext) {
	response, err := client.Do(ctx, http.MethodDelete, client.Endpoints().DeleteStory(state.StoryID), nil, nil)
	Expect(err).NotTo(HaveOccurred())

	if response.StatusCode == http.StatusOK {
		state.RecordDeleted(state.StoryID)
	}

	ExpectStatus(response, http.StatusOK, "Response status should be OK")
	ExpectBodyContains(response, constants.MessageStoryDeleted)
}

// DeleteStoryAgain checks a deleted story stays deleted: failure is repeatable.
func DeleteStoryAgain(ctx context.Context, client *APIClient, state *StoryContext) {
	response, err := client.Do(ctx, http.MethodDelete, client.Endpoints().DeleteStory(state.StoryID), nil, nil)
	Expect(err).NotTo(HaveOccurred())

	ExpectStatus(response, http.StatusBadRequest, "Response status should be Bad Request")
	ExpectBodyContains(response, constants.MessageStoryDeleteFailed)
}

func CreateStoryWithoutRequiredFields(ctx context.Context, client *APIClient, state *StoryContext) {
	request := NewStoryPayload().
		WithTitle("").
		WithDescription("").
		WithoutURL().
		Build()

	response, err := client.Do(ctx, http.MethodPost, client.Endpoints().CreateStory(), request, nil)
	Expect(err).NotTo(HaveOccurred())

	// Should the service accept it regardless, make sure it is cleaned up.
	created := &openapi.CreateStoryResponse{}
	if response.DecodeJSON(created) == nil && created.StoryId != "" {
		state.created = append(state.created, created.StoryId)
	}

	ExpectStatus(response, http.StatusBadRequest, "Response status should be Bad Request")
}

func EditNonExistentStory(ctx context.Context, client *APIClient, _ *StoryContext) {
	request := NewStoryPayload().
		WithTitle("New Story").
		WithDescription("This is a new story description").
		WithoutURL().
		Build()

	response, err := client.Do(ctx, http.MethodPut, client.Endpoints().EditStory(NonExistentStoryID), request, nil)
	Expect(err).NotTo(HaveOccurred())

	ExpectStatus(response, http.StatusNotFound, "Response status should be Not Found")
	ExpectBodyContains(response, constants.MessageStoryNotFound)
}

func DeleteNonExistentStory(ctx context.Context, client *APIClient, _ *StoryContext) {
	response, err := client.Do(ctx, http.MethodDelete, client.Endpoints().DeleteStory(NonExistentStoryID), nil, nil)
	Expect(err).NotTo(HaveOccurred())

	ExpectStatus(response, http.StatusBadRequest, "Response status should be Bad Request")
	ExpectBodyContains(response, constants.MessageStoryDeleteFailed)
}
