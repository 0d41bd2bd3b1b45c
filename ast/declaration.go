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
	"github.com/tienex/swift/common"
)

// NamedDeclaration is anything a reference expression can point at:
// declarations proper, and parameters.
type NamedDeclaration interface {
	DeclarationIdentifier() *Identifier
}

type Declaration interface {
	Element
	NamedDeclaration
	isDeclaration()
	DeclarationKind() common.DeclarationKind
	DeclarationAccess() common.Accessibility
	DeclarationMembers() *Members
	DeclarationDocString() string
}
