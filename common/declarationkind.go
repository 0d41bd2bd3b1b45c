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

type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindValue
	DeclarationKindFunction
	DeclarationKindVariable
	DeclarationKindConstant
	DeclarationKindParameter
	DeclarationKindSubscript
	DeclarationKindInitializer
	DeclarationKindDestructor
	DeclarationKindStructure
	DeclarationKindClass
	DeclarationKindEnumeration
	DeclarationKindProtocol
	DeclarationKindExtension
	DeclarationKindModule
	DeclarationKindSelf
)

func (k DeclarationKind) IsTypeDeclaration() bool {
	switch k {
	case DeclarationKindStructure,
		DeclarationKindClass,
		DeclarationKindEnumeration,
		DeclarationKindProtocol:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindValue:
		return "value"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindConstant:
		return "constant"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindSubscript:
		return "subscript"
	case DeclarationKindInitializer:
		return "initializer"
	case DeclarationKindDestructor:
		return "destructor"
	case DeclarationKindStructure:
		return "structure"
	case DeclarationKindClass:
		return "class"
	case DeclarationKindEnumeration:
		return "enumeration"
	case DeclarationKindProtocol:
		return "protocol"
	case DeclarationKindExtension:
		return "extension"
	case DeclarationKindModule:
		return "module"
	case DeclarationKindSelf:
		return "self"
	case DeclarationKindUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

func (k DeclarationKind) Keywords() string {
	switch k {
	case DeclarationKindFunction:
		return "func"
	case DeclarationKindVariable:
		return "var"
	case DeclarationKindConstant:
		return "let"
	case DeclarationKindSubscript:
		return "subscript"
	case DeclarationKindInitializer:
		return "init"
	case DeclarationKindDestructor:
		return "deinit"
	case DeclarationKindStructure:
		return "struct"
	case DeclarationKindClass:
		return "class"
	case DeclarationKindEnumeration:
		return "enum"
	case DeclarationKindProtocol:
		return "protocol"
	case DeclarationKindExtension:
		return "extension"
	case DeclarationKindSelf:
		return "self"
	default:
		return ""
	}
}
