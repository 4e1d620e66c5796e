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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storyspoil/api-tests/test/api"
)

var _ = Describe("Story Scenarios", Ordered, ContinueOnFailure, func() {
	var (
		session *api.Session
		state   *api.StoryContext
	)

	BeforeAll(func() {
		var err error

		session, err = api.OpenSession(ctx, localConfig())
		Expect(err).NotTo(HaveOccurred())

		state = api.NewStoryContext()

		DeferCleanup(func() {
			api.CleanupLeakedStories(ctx, session.Client, state)
			Expect(state.Leaked()).To(BeEmpty())
			session.Close()
		})
	})

	for _, scenario := range api.Scenarios() {
		It(scenario.Name, func() {
			scenario.Run(ctx, session.Client, state)
		})
	}

	It("should have carried the created story through the sequence", func() {
		Expect(state.StoryID).NotTo(BeEmpty())
	})
})

var _ = Describe("Story Lifecycle", func() {
	It("should create, edit, list and delete a story with the typed client", func() {
		session, err := api.OpenSession(ctx, localConfig())
		Expect(err).NotTo(HaveOccurred())

		DeferCleanup(session.Close)

		title := api.GenerateTestID()

		created, err := session.Client.CreateStory(ctx, api.NewStoryPayload().WithTitle(title).Build())
		Expect(err).NotTo(HaveOccurred())
		Expect(created.StoryId).NotTo(BeEmpty())

		_, err = session.Client.EditStory(ctx, created.StoryId, api.NewStoryPayload().WithTitle(title+"-edited").WithURL("https://example.com").Build())
		Expect(err).NotTo(HaveOccurred())

		stories, err := session.Client.ListStories(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(stories).To(ContainElement(HaveField("Title", title+"-edited")))

		_, err = session.Client.DeleteStory(ctx, created.StoryId)
		Expect(err).NotTo(HaveOccurred())

		_, err = session.Client.DeleteStory(ctx, created.StoryId)
		Expect(err).To(MatchError(api.ErrUnexpectedStatus))
	})
})

var _ = Describe("Story Context", func() {
	It("should report stories created but not deleted", func() {
		state := api.NewStoryContext()
		state.RecordCreated("c")
		state.RecordCreated("a")
		state.RecordCreated("b")
		state.RecordDeleted("b")

		Expect(state.StoryID).To(Equal("b"))
		Expect(state.Leaked()).To(Equal([]string{"a", "c"}))
	})

	It("should report nothing for an empty run", func() {
		Expect(api.NewStoryContext().Leaked()).To(BeEmpty())
	})
})
