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

// ExtensionDeclaration adds members to a previously declared type.
type ExtensionDeclaration struct {
	// Extended is the resolved declaration of the extended type
	Extended *CompositeDeclaration `json:"-"`
	Members  *Members

	Parent    DeclarationContext `json:"-"`
	DocString string
	Range
}

var _ Declaration = &ExtensionDeclaration{}
var _ DeclarationContext = &ExtensionDeclaration{}

func NewExtensionDeclaration(
	extended *CompositeDeclaration,
	members *Members,
	parent DeclarationContext,
	declRange Range,
) *ExtensionDeclaration {
	return &ExtensionDeclaration{
		Extended: extended,
		Members:  members,
		Parent:   parent,
		Range:    declRange,
	}
}

func (*ExtensionDeclaration) isDeclaration() {}

func (*ExtensionDeclaration) isDeclarationContext() {}

func (d *ExtensionDeclaration) DeclarationIdentifier() *Identifier {
	if d.Extended == nil {
		return nil
	}
	return &d.Extended.Identifier
}

func (d *ExtensionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindExtension
}

func (d *ExtensionDeclaration) DeclarationAccess() common.Accessibility {
	return common.AccessibilityNotSpecified
}

func (d *ExtensionDeclaration) DeclarationMembers() *Members {
	return d.Members
}

func (d *ExtensionDeclaration) DeclarationDocString() string {
	return d.DocString
}

func (d *ExtensionDeclaration) ContextParent() DeclarationContext {
	return d.Parent
}

func (d *ExtensionDeclaration) ContextMembers() *Members {
	return d.Members
}

func (d *ExtensionDeclaration) IsTypeContext() bool {
	return true
}

func (d *ExtensionDeclaration) IsLocalContext() bool {
	return false
}

// IsProtocolExtension reports whether the extended type is a protocol.
func (d *ExtensionDeclaration) IsProtocolExtension() bool {
	return d.Extended != nil && d.Extended.IsProtocol()
}

func (d *ExtensionDeclaration) Walk(walkChild func(Element)) {
	d.Members.Walk(walkChild)
}

func (d *ExtensionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ExtensionDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "ExtensionDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
