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
	"strings"

	"github.com/tienex/swift/common"
)

// CompositeDeclaration is a struct, class, enum, or protocol declaration.
type CompositeDeclaration struct {
	Access        common.Accessibility
	CompositeKind common.CompositeKind

	Identifier Identifier
	Members    *Members

	// Superclass is the resolved superclass declaration,
	// nil for structs, enums, protocols, and root classes
	Superclass *CompositeDeclaration `json:"-"`
	// Conformances are the names of adopted protocols
	Conformances []*NominalType

	// Foreign marks a type imported from a foreign module
	Foreign bool
	Generic bool
	// FixedLayout permits cross-module access to the stored layout
	FixedLayout bool
	// ForeignDispatch marks a protocol whose requirements are
	// dispatched through an external framework runtime
	ForeignDispatch bool
	Invalid         bool
	Implicit        bool

	Parent    DeclarationContext `json:"-"`
	DocString string
	Range

	declaredType *NominalType
}

var _ Declaration = &CompositeDeclaration{}
var _ DeclarationContext = &CompositeDeclaration{}

func NewCompositeDeclaration(
	access common.Accessibility,
	compositeKind common.CompositeKind,
	identifier Identifier,
	members *Members,
	parent DeclarationContext,
	docString string,
	declRange Range,
) *CompositeDeclaration {
	return &CompositeDeclaration{
		Access:        access,
		CompositeKind: compositeKind,
		Identifier:    identifier,
		Members:       members,
		Parent:        parent,
		DocString:     docString,
		Range:         declRange,
	}
}

func (*CompositeDeclaration) isDeclaration() {}

func (*CompositeDeclaration) isDeclarationContext() {}

func (d *CompositeDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *CompositeDeclaration) DeclarationKind() common.DeclarationKind {
	return d.CompositeKind.DeclarationKind()
}

func (d *CompositeDeclaration) DeclarationAccess() common.Accessibility {
	return d.Access
}

func (d *CompositeDeclaration) DeclarationMembers() *Members {
	return d.Members
}

func (d *CompositeDeclaration) DeclarationDocString() string {
	return d.DocString
}

func (d *CompositeDeclaration) ContextParent() DeclarationContext {
	return d.Parent
}

func (d *CompositeDeclaration) ContextMembers() *Members {
	return d.Members
}

func (d *CompositeDeclaration) IsTypeContext() bool {
	return true
}

func (d *CompositeDeclaration) IsLocalContext() bool {
	return false
}

func (d *CompositeDeclaration) IsClass() bool {
	return d.CompositeKind == common.CompositeKindClass
}

func (d *CompositeDeclaration) IsProtocol() bool {
	return d.CompositeKind == common.CompositeKindProtocol
}

// HasSuperclass reports whether the class inherits from another class.
func (d *CompositeDeclaration) HasSuperclass() bool {
	return d.Superclass != nil
}

// HasDestructor reports whether a destructor is already declared.
func (d *CompositeDeclaration) HasDestructor() bool {
	return len(d.Members.Destructors()) > 0
}

// ConformsTo reports whether the declaration names the given protocol
// in its conformance list.
func (d *CompositeDeclaration) ConformsTo(protocolName string) bool {
	for _, conformance := range d.Conformances {
		if conformance.Identifier.Identifier == protocolName {
			return true
		}
	}
	return false
}

// DeclaredType returns the nominal type this declaration declares.
// DeclaredType returns the nominal type this declaration introduces.
// The result is memoized: the type's identity is stable.
func (d *CompositeDeclaration) DeclaredType() *NominalType {
	if d.declaredType == nil {
		d.declaredType = &NominalType{
			Declaration: d,
			Identifier:  d.Identifier,
		}
	}
	return d.declaredType
}

// QualifiedIdentifier returns the identifier qualified by the module
// name and any enclosing type names, e.g. "SomeModule.SomeClass".
func (d *CompositeDeclaration) QualifiedIdentifier() string {
	var names []string
	var context DeclarationContext = d
	for context != nil {
		switch typedContext := context.(type) {
		case *CompositeDeclaration:
			names = append(names, typedContext.Identifier.Identifier)
		case *SourceFile:
			names = append(names, typedContext.ModuleName)
		}
		context = context.ContextParent()
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ".")
}

func (d *CompositeDeclaration) Walk(walkChild func(Element)) {
	d.Members.Walk(walkChild)
}

func (d *CompositeDeclaration) MarshalJSON() ([]byte, error) {
	type Alias CompositeDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "CompositeDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
