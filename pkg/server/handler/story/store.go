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

package story

import (
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/storyspoil/api-tests/pkg/openapi"
)

var ErrNotFound = errors.New("story not found")

// Store is an in-memory story repository.  Listing preserves creation order.
type Store struct {
	lock    sync.RWMutex
	stories map[string]openapi.Story
	order   []string
}

func NewStore() *Store {
	return &Store{
		stories: map[string]openapi.Story{},
	}
}

func urlOrEmpty(request *openapi.StoryRequest) string {
	if request.Url == nil {
		return ""
	}

	return *request.Url
}

// Create persists a new story and returns its generated identifier.
func (s *Store) Create(request *openapi.StoryRequest) string {
	id := uuid.NewString()

	s.lock.Lock()
	defer s.lock.Unlock()

	s.stories[id] = openapi.Story{
		Id:          id,
		Title:       request.Title,
		Description: request.Description,
		Url:         urlOrEmpty(request),
	}

	s.order = append(s.order, id)

	return id
}

// Update replaces the mutable fields of an existing story.
func (s *Store) Update(id string, request *openapi.StoryRequest) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	story, ok := s.stories[id]
	if !ok {
		return ErrNotFound
	}

	story.Title = request.Title
	story.Description = request.Description
	story.Url = urlOrEmpty(request)

	s.stories[id] = story

	return nil
}

// List returns all stories, oldest first.  The result is never nil.
func (s *Store) List() openapi.Stories {
	s.lock.RLock()
	defer s.lock.RUnlock()

	result := make(openapi.Stories, 0, len(s.order))

	for _, id := range s.order {
		result = append(result, s.stories[id])
	}

	return result
}

// Delete removes a story.
func (s *Store) Delete(id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.stories[id]; !ok {
		return ErrNotFound
	}

	delete(s.stories, id)

	s.order = slices.DeleteFunc(s.order, func(x string) bool {
		return x == id
	})

	return nil
}
