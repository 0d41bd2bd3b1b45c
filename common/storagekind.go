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
	"github.com/tienex/swift/errors"
)

// StorageKind classifies how a storage declaration implements
// reads and writes of its value.
//
// A declaration starts out as either Stored, Addressed, or Computed,
// and is upgraded at most once by accessor synthesis
// (e.g. Stored becomes StoredWithTrivialAccessors). It is never downgraded.
type StorageKind uint

const (
	// StorageKindStored is a stored value with no accessor functions yet.
	StorageKindStored StorageKind = iota
	// StorageKindStoredWithTrivialAccessors is a stored value
	// with synthesized trivial accessors.
	StorageKindStoredWithTrivialAccessors
	// StorageKindStoredWithObservers is a stored value
	// with willSet and/or didSet observers.
	StorageKindStoredWithObservers
	// StorageKindInheritedWithObservers overrides a superclass declaration
	// purely to attach observers, and has no storage of its own.
	StorageKindInheritedWithObservers
	// StorageKindAddressed surfaces its value through an addressor.
	StorageKindAddressed
	// StorageKindAddressedWithTrivialAccessors is addressed storage
	// with synthesized trivial accessors.
	StorageKindAddressedWithTrivialAccessors
	// StorageKindAddressedWithObservers is addressed storage with observers.
	StorageKindAddressedWithObservers
	// StorageKindComputed has explicit or fully synthesized accessor bodies
	// and no backing storage in the declaring type.
	StorageKindComputed
	// StorageKindComputedWithMutableAddress is computed storage
	// whose writes go through a mutable addressor.
	StorageKindComputedWithMutableAddress
)

func (k StorageKind) Name() string {
	switch k {
	case StorageKindStored:
		return "stored"
	case StorageKindStoredWithTrivialAccessors:
		return "stored with trivial accessors"
	case StorageKindStoredWithObservers:
		return "stored with observers"
	case StorageKindInheritedWithObservers:
		return "inherited with observers"
	case StorageKindAddressed:
		return "addressed"
	case StorageKindAddressedWithTrivialAccessors:
		return "addressed with trivial accessors"
	case StorageKindAddressedWithObservers:
		return "addressed with observers"
	case StorageKindComputed:
		return "computed"
	case StorageKindComputedWithMutableAddress:
		return "computed with mutable address"
	}

	panic(errors.NewUnreachableError())
}

// HasStorage returns true if the kind has backing storage
// in the declaring type.
func (k StorageKind) HasStorage() bool {
	switch k {
	case StorageKindStored,
		StorageKindStoredWithTrivialAccessors,
		StorageKindStoredWithObservers,
		StorageKindAddressed,
		StorageKindAddressedWithTrivialAccessors,
		StorageKindAddressedWithObservers:

		return true

	default:
		return false
	}
}

// ExpectsAccessorFunctions returns true if a declaration of the kind
// must already have accessor functions.
func (k StorageKind) ExpectsAccessorFunctions() bool {
	switch k {
	case StorageKindStored, StorageKindAddressed:
		return false
	default:
		return true
	}
}

// HasObservers returns true for the observer kinds.
func (k StorageKind) HasObservers() bool {
	switch k {
	case StorageKindStoredWithObservers,
		StorageKindInheritedWithObservers,
		StorageKindAddressedWithObservers:

		return true

	default:
		return false
	}
}
