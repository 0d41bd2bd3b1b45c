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

//go:generate go run golang.org/x/tools/cmd/stringer -type=AccessorKind

// AccessorKind is the role an accessor function plays
// for the storage declaration that owns it.
type AccessorKind uint

const (
	AccessorKindUnknown AccessorKind = iota
	AccessorKindGetter
	AccessorKindSetter
	AccessorKindMaterializeForSet
	AccessorKindWillSet
	AccessorKindDidSet
)

func (k AccessorKind) Name() string {
	switch k {
	case AccessorKindGetter:
		return "getter"
	case AccessorKindSetter:
		return "setter"
	case AccessorKindMaterializeForSet:
		return "materializeForSet"
	case AccessorKindWillSet:
		return "willSet"
	case AccessorKindDidSet:
		return "didSet"
	}

	panic(errors.NewUnreachableError())
}

func (k AccessorKind) Keyword() string {
	switch k {
	case AccessorKindGetter:
		return "get"
	case AccessorKindSetter:
		return "set"
	case AccessorKindMaterializeForSet:
		return "materializeForSet"
	case AccessorKindWillSet:
		return "willSet"
	case AccessorKindDidSet:
		return "didSet"
	}

	panic(errors.NewUnreachableError())
}

// IsObserver returns true for the observer accessor kinds,
// which run around a store instead of implementing it.
func (k AccessorKind) IsObserver() bool {
	switch k {
	case AccessorKindWillSet, AccessorKindDidSet:
		return true
	default:
		return false
	}
}

func (k AccessorKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
