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

import (
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// BindStoryID decodes the storyId path parameter as captured by the router.
// The raw value is path unescaped, an empty value is an error.
func BindStoryID(value string) (string, error) {
	var storyID string

	if err := runtime.BindStyledParameterWithOptions("simple", "storyId", value, &storyID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true}); err != nil {
		return "", fmt.Errorf("invalid format for parameter storyId: %w", err)
	}

	return storyID, nil
}
