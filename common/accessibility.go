/*
 * swift-frontend - A Swift language front end in Go
 *
 * Copyright the swift-frontend authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"encoding/json"

	"github.com/tienex/swift/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Accessibility

type Accessibility uint

// NOTE: order indicates permissiveness: from least to most permissive!

const (
	AccessibilityNotSpecified Accessibility = iota
	AccessibilityPrivate
	AccessibilityFilePrivate
	AccessibilityInternal
	AccessibilityPublic
)

func (a Accessibility) IsLessPermissiveThan(otherAccessibility Accessibility) bool {
	return a < otherAccessibility
}

// MinAccessibility returns the least permissive of the two given accessibilities.
// An unspecified accessibility does not participate in the comparison.
func MinAccessibility(a, b Accessibility) Accessibility {
	if a == AccessibilityNotSpecified {
		return b
	}
	if b == AccessibilityNotSpecified {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func (a Accessibility) Keyword() string {
	switch a {
	case AccessibilityNotSpecified:
		return ""
	case AccessibilityPrivate:
		return "private"
	case AccessibilityFilePrivate:
		return "fileprivate"
	case AccessibilityInternal:
		return "internal"
	case AccessibilityPublic:
		return "public"
	}

	panic(errors.NewUnreachableError())
}

func (a Accessibility) Description() string {
	switch a {
	case AccessibilityNotSpecified:
		return "not specified"
	case AccessibilityPrivate:
		return "private"
	case AccessibilityFilePrivate:
		return "file-private"
	case AccessibilityInternal:
		return "internal"
	case AccessibilityPublic:
		return "public"
	}

	panic(errors.NewUnreachableError())
}

func (a Accessibility) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}
