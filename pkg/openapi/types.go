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

package openapi

// AuthenticationRequest is the body of a user authentication request.
type AuthenticationRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
}

// AuthenticationResponse carries the bearer token for an authenticated user.
type AuthenticationResponse struct {
	Username    string `json:"username,omitempty"`
	AccessToken string `json:"accessToken"`
}

// StoryRequest is used to create or edit a story.
type StoryRequest struct {
	Title       string  `json:"Title"`
	Description string  `json:"Description"`
	Url         *string `json:"Url,omitempty"` //nolint:revive,stylecheck
}

// Story is a story as returned by the list endpoint.
type Story struct {
	Id          string `json:"id"` //nolint:revive,stylecheck
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url,omitempty"` //nolint:revive,stylecheck
}

// Stories is a list of stories.
type Stories []Story

// CreateStoryResponse is returned when a story is created.
type CreateStoryResponse struct {
	StoryId string `json:"storyId"` //nolint:revive,stylecheck
	Msg     string `json:"msg"`
}

// MessageResponse is the generic status message envelope.
type MessageResponse struct {
	Msg string `json:"msg"`
}
