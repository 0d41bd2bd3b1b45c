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

//go:generate go run golang.org/x/tools/cmd/stringer -type=CompositeKind

type CompositeKind uint

const (
	CompositeKindUnknown CompositeKind = iota
	CompositeKindStructure
	CompositeKindClass
	CompositeKindEnumeration
	CompositeKindProtocol
)

var AllCompositeKinds = []CompositeKind{
	CompositeKindStructure,
	CompositeKindClass,
	CompositeKindEnumeration,
	CompositeKindProtocol,
}

func (k CompositeKind) Name() string {
	switch k {
	case CompositeKindStructure:
		return "structure"
	case CompositeKindClass:
		return "class"
	case CompositeKindEnumeration:
		return "enumeration"
	case CompositeKindProtocol:
		return "protocol"
	}

	panic(errors.NewUnreachableError())
}

func (k CompositeKind) Keyword() string {
	switch k {
	case CompositeKindStructure:
		return "struct"
	case CompositeKindClass:
		return "class"
	case CompositeKindEnumeration:
		return "enum"
	case CompositeKindProtocol:
		return "protocol"
	}

	panic(errors.NewUnreachableError())
}

func (k CompositeKind) DeclarationKind() DeclarationKind {
	switch k {
	case CompositeKindStructure:
		return DeclarationKindStructure
	case CompositeKindClass:
		return DeclarationKindClass
	case CompositeKindEnumeration:
		return DeclarationKindEnumeration
	case CompositeKindProtocol:
		return DeclarationKindProtocol
	}

	panic(errors.NewUnreachableError())
}

// SupportsInheritance returns true if declarations of the kind
// can inherit from a superclass.
func (k CompositeKind) SupportsInheritance() bool {
	return k == CompositeKindClass
}

// IsValueKind returns true if instances of the kind have value semantics.
func (k CompositeKind) IsValueKind() bool {
	switch k {
	case CompositeKindStructure, CompositeKindEnumeration:
		return true
	default:
		return false
	}
}

func (k CompositeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
