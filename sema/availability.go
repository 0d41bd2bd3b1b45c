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

package sema

import (
	"github.com/tienex/swift/ast"
)

// InferAvailability computes the most restrictive combination of the
// given availabilities: the highest introduction version, and
// unavailability if any source is unavailable. A synthesized
// declaration must not be usable anywhere one of its sources is not.
func InferAvailability(availabilities ...ast.Availability) ast.Availability {
	var result ast.Availability
	for _, availability := range availabilities {
		if availability.IsUnrestricted() {
			continue
		}
		if result.IsUnrestricted() {
			result = availability
			continue
		}
		if availability.Unavailable {
			result.Unavailable = true
		}
		if availability.Platform == result.Platform {
			result.Introduced = ast.MaxVersion(result.Introduced, availability.Introduced)
		}
	}
	return result
}

// accessorAvailability is the availability of a synthesized
// materializeForSet accessor: the most restrictive of the storage
// and its getter and setter.
func accessorAvailability(storage ast.StorageDeclaration) ast.Availability {
	availabilities := []ast.Availability{
		storage.StorageAvailability(),
	}
	if getter := storage.Getter(); getter != nil {
		availabilities = append(availabilities, getter.Availability)
	}
	if setter := storage.Setter(); setter != nil {
		availabilities = append(availabilities, setter.Availability)
	}
	return InferAvailability(availabilities...)
}
