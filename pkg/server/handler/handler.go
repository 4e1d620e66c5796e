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

package handler

import (
	"crypto/subtle"
	goerrors "errors"
	"net/http"

	"github.com/storyspoil/api-tests/pkg/constants"
	"github.com/storyspoil/api-tests/pkg/openapi"
	"github.com/storyspoil/api-tests/pkg/server/errors"
	"github.com/storyspoil/api-tests/pkg/server/handler/story"
	"github.com/storyspoil/api-tests/pkg/server/middleware"
	"github.com/storyspoil/api-tests/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Credentials is a user allowed to authenticate.
type Credentials struct {
	Username string
	Password string
}

type Handler struct {
	// stories holds all stories in memory.
	stories *story.Store

	// authorizer issues bearer tokens on login.
	authorizer *middleware.Authorizer

	// users may exchange their credentials for a token.
	users []Credentials
}

func New(stories *story.Store, authorizer *middleware.Authorizer, users []Credentials) *Handler {
	h := &Handler{
		stories:    stories,
		authorizer: authorizer,
		users:      users,
	}

	return h
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func (h *Handler) authenticate(username, password string) bool {
	for _, user := range h.users {
		userOK := subtle.ConstantTimeCompare([]byte(user.Username), []byte(username)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) == 1

		if userOK && passwordOK {
			return true
		}
	}

	return false
}

func (h *Handler) PostApiUserAuthentication(w http.ResponseWriter, r *http.Request) {
	request := &openapi.AuthenticationRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, errors.HTTPBadRequest("invalid authentication request").WithError(err))
		return
	}

	if !h.authenticate(request.UserName, request.Password) {
		errors.HandleError(w, r, errors.HTTPUnauthorized("invalid username or password"))
		return
	}

	token, err := h.authorizer.Issue(request.UserName)
	if err != nil {
		errors.HandleError(w, r, errors.HTTPServerError("unable to issue token").WithError(err))
		return
	}

	log.FromContext(r.Context()).Info("user authenticated", "user", request.UserName)

	result := &openapi.AuthenticationResponse{
		Username:    request.UserName,
		AccessToken: token,
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiStoryCreate(w http.ResponseWriter, r *http.Request) {
	request := &openapi.StoryRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, errors.HTTPBadRequest("invalid story request").WithError(err))
		return
	}

	id := h.stories.Create(request)

	log.FromContext(r.Context()).Info("story created", "storyId", id)

	result := &openapi.CreateStoryResponse{
		StoryId: id,
		Msg:     constants.MessageStoryCreated,
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

func (h *Handler) PutApiStoryEditStoryId(w http.ResponseWriter, r *http.Request, storyID string) {
	request := &openapi.StoryRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, errors.HTTPBadRequest("invalid story request").WithError(err))
		return
	}

	if err := h.stories.Update(storyID, request); err != nil {
		if goerrors.Is(err, story.ErrNotFound) {
			errors.HandleError(w, r, errors.HTTPNotFound(constants.MessageStoryNotFound).WithError(err))
			return
		}

		errors.HandleError(w, r, err)

		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, &openapi.MessageResponse{Msg: constants.MessageStoryEdited})
}

func (h *Handler) GetApiStoryAll(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, h.stories.List())
}

func (h *Handler) DeleteApiStoryDeleteStoryId(w http.ResponseWriter, r *http.Request, storyID string) {
	if err := h.stories.Delete(storyID); err != nil {
		if goerrors.Is(err, story.ErrNotFound) {
			errors.HandleError(w, r, errors.HTTPBadRequest(constants.MessageStoryDeleteFailed).WithError(err))
			return
		}

		errors.HandleError(w, r, err)

		return
	}

	log.FromContext(r.Context()).Info("story deleted", "storyId", storyID)

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, &openapi.MessageResponse{Msg: constants.MessageStoryDeleted})
}
