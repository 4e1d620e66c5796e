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

package constants

var (
	// Application is the application name.
	//nolint:gochecknoglobals
	Application = "storyspoil-local-api"

	// Version is the application version set via the Makefile.
	//nolint:gochecknoglobals
	Version string

	// Revision is the git revision set via the Makefile.
	//nolint:gochecknoglobals
	Revision string
)

// Messages returned in the "msg" field of Story API responses.  The remote
// service emits these verbatim and the integration suites match on them.
const (
	MessageStoryCreated      = "Successfully created!"
	MessageStoryEdited       = "Successfully edited"
	MessageStoryDeleted      = "Deleted successfully!"
	MessageStoryNotFound     = "No spoilers..."
	MessageStoryDeleteFailed = "Unable to delete this story spoiler!"
)
