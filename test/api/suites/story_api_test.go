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
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storyspoil/api-tests/test/api"
)

var _ = Describe("Story API", Ordered, ContinueOnFailure, func() {
	var state *api.StoryContext

	BeforeAll(func() {
		state = api.NewStoryContext()
	})

	AfterAll(func() {
		api.CleanupLeakedStories(ctx, client, state)
		Expect(state.Leaked()).To(BeEmpty(), "stories created by the run should have been deleted")
	})

	Context("When managing stories", func() {
		for _, scenario := range api.Scenarios() {
			It(scenario.Name, func() {
				scenario.Run(ctx, client, state)
			})
		}
	})
})
