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
	"errors"
	"io"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/storyspoil/api-tests/test/api"
	"github.com/storyspoil/api-tests/test/api/mock"
)

var errConnectionRefused = errors.New("dial tcp 127.0.0.1:1: connect: connection refused")

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var _ = Describe("Authentication Bootstrap", func() {
	var (
		ctrl *gomock.Controller
		doer *mock.MockDoer
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		doer = mock.NewMockDoer(ctrl)
	})

	Context("When a static token is configured", func() {
		It("should use the token without calling the login endpoint", func() {
			client := api.NewAPIClientWithDoer(&api.TestConfig{BaseURL: "http://storyspoil.invalid"}, doer)

			token, err := api.ResolveToken(ctx, client, api.TokenOptions{
				StaticToken: "  static-token ",
				Username:    "ignored",
				Password:    "ignored",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("static-token"))
		})

		It("should fall back to the login endpoint when the token is blank", func() {
			client := api.NewAPIClientWithConfig(localConfig())

			token, err := api.ResolveToken(ctx, client, api.TokenOptions{
				StaticToken: "   ",
				Username:    localUsername,
				Password:    localPassword,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
		})
	})

	Context("When logging in with credentials", func() {
		It("should return a token accepted by the story endpoints", func() {
			client := api.NewAPIClientWithConfig(localConfig())

			token, err := api.ResolveToken(ctx, client, localConfig().TokenOptions())
			Expect(err).NotTo(HaveOccurred())

			client.SetAuthToken(token)

			_, err = client.ListStories(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should send the credentials as a JSON body", func() {
			client := api.NewAPIClientWithDoer(&api.TestConfig{BaseURL: "http://storyspoil.invalid"}, doer)

			doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				Expect(req.Method).To(Equal(http.MethodPost))
				Expect(req.URL.Path).To(Equal("/api/User/Authentication"))
				Expect(req.Header.Get("Authorization")).To(BeEmpty())
				Expect(req.Header.Get("Content-Type")).To(Equal("application/json"))

				body, err := io.ReadAll(req.Body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body).To(MatchJSON(`{"UserName":"user","Password":"pass"}`))

				return jsonResponse(http.StatusOK, `{"username":"user","accessToken":"issued"}`), nil
			})

			token, err := api.ResolveToken(ctx, client, api.TokenOptions{Username: "user", Password: "pass"})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("issued"))
		})

		It("should fail with the status and body when credentials are rejected", func() {
			client := api.NewAPIClientWithConfig(localConfig())

			_, err := api.ResolveToken(ctx, client, api.TokenOptions{Username: localUsername, Password: "wrong"})
			Expect(err).To(MatchError(api.ErrAuthenticationFailed))

			var authErr *api.AuthenticationError

			Expect(errors.As(err, &authErr)).To(BeTrue())
			Expect(authErr.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(authErr.Body).To(ContainSubstring("invalid username or password"))
		})

		DescribeTable("should reject a successful response without a usable token",
			func(body string) {
				client := api.NewAPIClientWithDoer(&api.TestConfig{BaseURL: "http://storyspoil.invalid"}, doer)

				doer.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusOK, body), nil)

				_, err := api.ResolveToken(ctx, client, api.TokenOptions{Username: "user", Password: "pass"})
				Expect(err).To(MatchError(api.ErrAuthenticationResponseMalformed))
				Expect(err).NotTo(MatchError(api.ErrAuthenticationFailed))
			},
			Entry("missing field", `{"username":"user"}`),
			Entry("blank field", `{"accessToken":"   "}`),
			Entry("wrong type", `{"accessToken":42}`),
			Entry("not JSON", `<html>oops</html>`),
		)

		It("should propagate transport errors unmasked", func() {
			client := api.NewAPIClientWithDoer(&api.TestConfig{BaseURL: "http://storyspoil.invalid"}, doer)

			doer.EXPECT().Do(gomock.Any()).Return(nil, errConnectionRefused)

			_, err := api.ResolveToken(ctx, client, api.TokenOptions{Username: "user", Password: "pass"})
			Expect(err).To(MatchError(errConnectionRefused))

			var authErr *api.AuthenticationError

			Expect(errors.As(err, &authErr)).To(BeFalse())
		})
	})

	Context("When opening a session", func() {
		It("should attach the resolved token and close idempotently", func() {
			session, err := api.OpenSession(ctx, localConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Token).NotTo(BeEmpty())
			Expect(session.BaseURL).To(Equal(localAPI.URL))

			stories, err := session.Client.ListStories(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stories).NotTo(BeNil())

			session.Close()
			session.Close()
		})

		It("should fail when authentication fails", func() {
			config := localConfig()
			config.Password = "wrong"

			session, err := api.OpenSession(ctx, config)
			Expect(err).To(MatchError(api.ErrAuthenticationFailed))
			Expect(session).To(BeNil())
		})
	})
})
