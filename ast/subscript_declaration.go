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
	"encoding/json"

	"github.com/tienex/swift/common"
)

// SubscriptDeclaration is an indexed accessor declaration.
// Subscripts are always computed or addressed, never plain stored.
type SubscriptDeclaration struct {
	AbstractStorage

	Access       common.Accessibility
	SetterAccess common.Accessibility

	Identifier  Identifier
	Indices     *ParameterList
	ElementType *TypeAnnotation

	Implicit bool

	Parent    DeclarationContext `json:"-"`
	DocString string
	Range
}

var _ Declaration = &SubscriptDeclaration{}
var _ StorageDeclaration = &SubscriptDeclaration{}

func NewSubscriptDeclaration(
	access common.Accessibility,
	indices *ParameterList,
	elementType *TypeAnnotation,
	parent DeclarationContext,
	docString string,
	declRange Range,
) *SubscriptDeclaration {
	return &SubscriptDeclaration{
		Access:      access,
		Identifier:  Identifier{Identifier: "subscript"},
		Indices:     indices,
		ElementType: elementType,
		Parent:      parent,
		DocString:   docString,
		Range:       declRange,
	}
}

func (*SubscriptDeclaration) isDeclaration() {}

func (*SubscriptDeclaration) isStorageDeclaration() {}

func (d *SubscriptDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *SubscriptDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindSubscript
}

func (d *SubscriptDeclaration) DeclarationAccess() common.Accessibility {
	return d.Access
}

func (d *SubscriptDeclaration) DeclarationMembers() *Members {
	return nil
}

func (d *SubscriptDeclaration) DeclarationDocString() string {
	return d.DocString
}

func (d *SubscriptDeclaration) ElementTypeAnnotation() *TypeAnnotation {
	return d.ElementType
}

func (d *SubscriptDeclaration) IndexParameterList() *ParameterList {
	return d.Indices
}

func (d *SubscriptDeclaration) StorageContext() DeclarationContext {
	return d.Parent
}

func (d *SubscriptDeclaration) DeclarationSetterAccess() common.Accessibility {
	if d.SetterAccess != common.AccessibilityNotSpecified {
		return d.SetterAccess
	}
	return d.Access
}

func (d *SubscriptDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

func (d *SubscriptDeclaration) MarshalJSON() ([]byte, error) {
	type Alias SubscriptDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "SubscriptDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
