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
package api_test

import (
	"io"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/storyspoil/api-tests/test/api"
	"github.com/storyspoil/api-tests/test/api/mock"
)

var _ = Describe("API Client", func() {
	var (
		doer   *mock.MockDoer
		client *api.APIClient
	)

	BeforeEach(func() {
		doer = mock.NewMockDoer(gomock.NewController(GinkgoT()))
		client = api.NewAPIClientWithDoer(&api.TestConfig{BaseURL: "http://storyspoil.invalid/"}, doer)
		client.SetAuthToken("the-token")
	})

	Context("When sending a request", func() {
		It("should attach the bearer token, trace context and query", func() {
			doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				Expect(req.Method).To(Equal(http.MethodPut))
				Expect(req.URL.String()).To(Equal("http://storyspoil.invalid/api/Story/Edit/abc?storyId=abc"))
				Expect(req.Header.Get("Authorization")).To(Equal("Bearer the-token"))
				Expect(req.Header.Get("Traceparent")).To(MatchRegexp(`^00-[0-9a-f]{32}-[0-9a-f]{16}-01$`))
				Expect(req.Header.Get("Content-Type")).To(Equal("application/json"))

				body, err := io.ReadAll(req.Body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body).To(MatchJSON(`{"Title":"Story","Description":"This is a test story description.","Url":""}`))

				return jsonResponse(http.StatusOK, `{"msg":"Successfully edited"}`), nil
			})

			response, err := client.Do(ctx, http.MethodPut, client.Endpoints().EditStory("abc"), api.NewStoryPayload().Build(), api.EditQuery("abc"))
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusOK))
			Expect(response.TraceID).To(HaveLen(32))
		})

		It("should omit the body and content type when there is no body", func() {
			doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				Expect(req.Body).To(BeNil())
				Expect(req.Header.Get("Content-Type")).To(BeEmpty())

				return jsonResponse(http.StatusOK, `[]`), nil
			})

			_, err := client.Do(ctx, http.MethodGet, client.Endpoints().ListStories(), nil, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return client errors as responses, not errors", func() {
			doer.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusNotFound, `{"msg":"No spoilers..."}`), nil)

			response, err := client.Do(ctx, http.MethodPut, client.Endpoints().EditStory(api.NonExistentStoryID), api.NewStoryPayload().Build(), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusNotFound))
			Expect(response.String()).To(ContainSubstring("No spoilers..."))
		})

		It("should propagate transport errors", func() {
			doer.EXPECT().Do(gomock.Any()).Return(nil, errConnectionRefused)

			response, err := client.Do(ctx, http.MethodGet, client.Endpoints().ListStories(), nil, nil)
			Expect(err).To(MatchError(errConnectionRefused))
			Expect(response).To(BeNil())
		})
	})

	Context("When using typed helpers", func() {
		It("should report an unexpected status", func() {
			doer.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusBadRequest, `{"msg":"Unable to delete this story spoiler!"}`), nil)

			_, err := client.DeleteStory(ctx, api.NonExistentStoryID)
			Expect(err).To(MatchError(api.ErrUnexpectedStatus))
			Expect(err.Error()).To(ContainSubstring("expected 200, got 400"))
		})

		It("should decode a created story", func() {
			doer.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusCreated, `{"storyId":"abc","msg":"Successfully created!"}`), nil)

			created, err := client.CreateStory(ctx, api.NewStoryPayload().Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(created.StoryId).To(Equal("abc"))
		})
	})
})

var _ = Describe("Endpoints", func() {
	endpoints := api.NewEndpoints()

	It("should build story paths", func() {
		Expect(endpoints.Authentication()).To(Equal("/api/User/Authentication"))
		Expect(endpoints.CreateStory()).To(Equal("/api/Story/Create"))
		Expect(endpoints.ListStories()).To(Equal("/api/Story/All"))
		Expect(endpoints.EditStory("abc")).To(Equal("/api/Story/Edit/abc"))
		Expect(endpoints.DeleteStory("abc")).To(Equal("/api/Story/Delete/abc"))
	})

	It("should escape identifiers", func() {
		Expect(endpoints.EditStory("a/b c")).To(Equal("/api/Story/Edit/a%2Fb%20c"))
	})
})

var _ = Describe("Story payloads", func() {
	It("should default to a valid story", func() {
		payload := api.NewStoryPayload().Build()
		Expect(payload.Title).NotTo(BeEmpty())
		Expect(payload.Description).NotTo(BeEmpty())
		Expect(payload.Url).To(HaveValue(BeEmpty()))
	})

	It("should not share state between builds", func() {
		builder := api.NewStoryPayload()
		first := builder.Build()
		second := builder.WithTitle("Edited Story").WithoutURL().Build()

		Expect(first.Title).To(Equal("Story"))
		Expect(first.Url).NotTo(BeNil())
		Expect(second.Title).To(Equal("Edited Story"))
		Expect(second.Url).To(BeNil())
	})

	It("should generate distinct test IDs", func() {
		Expect(api.GenerateTestID()).To(MatchRegexp(`^test-[0-9a-f]{8}$`))
		Expect(api.GenerateTestID()).NotTo(Equal(api.GenerateTestID()))
	})
})
