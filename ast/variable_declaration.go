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

	"github.com/turbolent/prettier"

	"github.com/tienex/swift/common"
)

// VariableDeclaration is a `var` or `let` declaration,
// at type scope, source-file scope, or local scope.
// It also serves as a local binding statement.
type VariableDeclaration struct {
	AbstractStorage

	Access common.Accessibility
	// SetterAccess is the accessibility of the setter when it is
	// narrower than the declaration's, e.g. private(set)
	SetterAccess common.Accessibility

	IsConstant bool
	IsLazy     bool
	// IsCopying marks a property whose setter stores a copy of the
	// new value, requiring the value type to support copying
	IsCopying bool
	// IsForeignManaged marks a property whose storage is managed
	// entirely by an external framework
	IsForeignManaged bool
	Implicit         bool
	FixedLayout      bool

	Identifier     Identifier
	TypeAnnotation *TypeAnnotation
	// Value is the initializer expression, nil when absent
	Value Expression

	// WillSet and DidSet are the observer bodies as written;
	// observer synthesis folds them into the setter
	WillSet *FunctionDeclaration `json:"-"`
	DidSet  *FunctionDeclaration `json:"-"`

	Parent    DeclarationContext `json:"-"`
	DocString string
	Range
}

var _ Declaration = &VariableDeclaration{}
var _ Statement = &VariableDeclaration{}
var _ StorageDeclaration = &VariableDeclaration{}

func NewVariableDeclaration(
	access common.Accessibility,
	isConstant bool,
	identifier Identifier,
	typeAnnotation *TypeAnnotation,
	value Expression,
	parent DeclarationContext,
	docString string,
	declRange Range,
) *VariableDeclaration {
	return &VariableDeclaration{
		Access:         access,
		IsConstant:     isConstant,
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		Value:          value,
		Parent:         parent,
		DocString:      docString,
		Range:          declRange,
	}
}

func (*VariableDeclaration) isDeclaration() {}

func (*VariableDeclaration) isStatement() {}

func (*VariableDeclaration) isStorageDeclaration() {}

func (d *VariableDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *VariableDeclaration) DeclarationKind() common.DeclarationKind {
	if d.IsConstant {
		return common.DeclarationKindConstant
	}
	return common.DeclarationKindVariable
}

func (d *VariableDeclaration) DeclarationAccess() common.Accessibility {
	return d.Access
}

func (d *VariableDeclaration) DeclarationMembers() *Members {
	return nil
}

func (d *VariableDeclaration) DeclarationDocString() string {
	return d.DocString
}

func (d *VariableDeclaration) ElementTypeAnnotation() *TypeAnnotation {
	return d.TypeAnnotation
}

func (d *VariableDeclaration) IndexParameterList() *ParameterList {
	return nil
}

func (d *VariableDeclaration) StorageContext() DeclarationContext {
	return d.Parent
}

// DeclarationSetterAccess returns the setter's accessibility,
// which defaults to the declaration's own.
func (d *VariableDeclaration) DeclarationSetterAccess() common.Accessibility {
	if d.SetterAccess != common.AccessibilityNotSpecified {
		return d.SetterAccess
	}
	return d.Access
}

// HasObservers reports whether the declaration has willSet or didSet
// observers as written, before observer synthesis runs.
func (d *VariableDeclaration) HasObservers() bool {
	return d.WillSet != nil || d.DidSet != nil
}

// IsLocal reports whether the variable is declared in a local scope.
func (d *VariableDeclaration) IsLocal() bool {
	return d.Parent != nil && d.Parent.IsLocalContext()
}

func (d *VariableDeclaration) Walk(walkChild func(Element)) {
	if d.Value != nil {
		walkChild(d.Value)
	}
}

func (d *VariableDeclaration) String() string {
	return Prettier(d)
}

func (d *VariableDeclaration) Doc() prettier.Doc {
	var keyword string
	if d.IsConstant {
		keyword = "let "
	} else {
		keyword = "var "
	}
	doc := prettier.Concat{
		prettier.Text(keyword),
		prettier.Text(d.Identifier.Identifier),
	}
	if d.TypeAnnotation != nil {
		doc = append(
			doc,
			prettier.Text(": "),
			d.TypeAnnotation.Doc(),
		)
	}
	if d.Value != nil {
		doc = append(
			doc,
			prettier.Text(" = "),
			d.Value.Doc(),
		)
	}
	return doc
}

func (d *VariableDeclaration) MarshalJSON() ([]byte, error) {
	type Alias VariableDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "VariableDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
