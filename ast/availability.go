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

package ast

import (
	"fmt"
)

// Version is a platform version, e.g. 10.12
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// IsAtLeast reports whether v is the same as or newer than other.
func (v Version) IsAtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// MaxVersion returns the newer of the two versions.
func MaxVersion(a, b Version) Version {
	if a.IsAtLeast(b) {
		return a
	}
	return b
}

// Availability restricts a declaration to platform versions.
// The zero value means available everywhere.
type Availability struct {
	Platform    string
	Introduced  Version
	Unavailable bool
}

func (a Availability) IsUnrestricted() bool {
	return a == Availability{}
}

func (a Availability) String() string {
	if a.Unavailable {
		return fmt.Sprintf("@available(%s, unavailable)", a.Platform)
	}
	return fmt.Sprintf("@available(%s %s, *)", a.Platform, a.Introduced)
}
