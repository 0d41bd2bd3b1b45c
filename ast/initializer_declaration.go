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
	"github.com/tienex/swift/errors"
)

//go:generate stringer -type=Failability

// Failability records whether an initializer can fail,
// producing an optional instance.
type Failability uint8

const (
	FailabilityNonFailable Failability = iota
	FailabilityFailable
	FailabilityImplicitlyUnwrapped
)

func (f Failability) Suffix() string {
	switch f {
	case FailabilityNonFailable:
		return ""
	case FailabilityFailable:
		return "?"
	case FailabilityImplicitlyUnwrapped:
		return "!"
	}

	panic(errors.NewUnreachableError())
}

func (f Failability) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// InitializerDeclaration is an initializer of a nominal type.
type InitializerDeclaration struct {
	Access common.Accessibility

	Identifier Identifier

	SelfParameter *Parameter `json:"-"`
	ParameterList *ParameterList

	Failability Failability
	Throws      bool
	Required    bool
	Override    bool

	// Memberwise marks the synthesized memberwise initializer of a
	// struct, or the synthesized default initializer of any type
	Memberwise bool
	// Stub marks a synthesized override body that traps at runtime
	// instead of forwarding to the superclass
	Stub     bool
	Implicit bool

	// Foreign marks an initializer whose selector is visible to an
	// external framework runtime; ForeignName carries that selector
	Foreign     bool
	ForeignName string

	// Generic marks an initializer with its own generic parameters
	Generic bool

	OverriddenInitializer *InitializerDeclaration `json:"-"`

	FunctionBlock *FunctionBlock

	Availability Availability

	Parent    DeclarationContext `json:"-"`
	DocString string
	StartPos  Position `json:"-"`
}

var _ Declaration = &InitializerDeclaration{}
var _ DeclarationContext = &InitializerDeclaration{}

func NewInitializerDeclaration(
	access common.Accessibility,
	parameterList *ParameterList,
	parent DeclarationContext,
	startPos Position,
) *InitializerDeclaration {
	return &InitializerDeclaration{
		Access:        access,
		Identifier:    Identifier{Identifier: "init"},
		ParameterList: parameterList,
		Parent:        parent,
		StartPos:      startPos,
	}
}

func (*InitializerDeclaration) isDeclaration() {}

func (*InitializerDeclaration) isDeclarationContext() {}

func (d *InitializerDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *InitializerDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindInitializer
}

func (d *InitializerDeclaration) DeclarationAccess() common.Accessibility {
	return d.Access
}

func (d *InitializerDeclaration) DeclarationMembers() *Members {
	return nil
}

func (d *InitializerDeclaration) DeclarationDocString() string {
	return d.DocString
}

func (d *InitializerDeclaration) ContextParent() DeclarationContext {
	return d.Parent
}

func (d *InitializerDeclaration) ContextMembers() *Members {
	return nil
}

func (d *InitializerDeclaration) IsTypeContext() bool {
	return false
}

func (d *InitializerDeclaration) IsLocalContext() bool {
	return true
}

// IsDesignated reports whether the initializer is a designated
// initializer. Convenience initializers are out of scope here,
// so all initializers are designated.
func (d *InitializerDeclaration) IsDesignated() bool {
	return true
}

func (d *InitializerDeclaration) HasBody() bool {
	return d.FunctionBlock != nil
}

func (d *InitializerDeclaration) SetFunctionBlock(functionBlock *FunctionBlock) {
	if d.FunctionBlock != nil {
		panic(errors.NewUnexpectedError("initializer already has a body"))
	}
	d.FunctionBlock = functionBlock
}

func (d *InitializerDeclaration) Walk(walkChild func(Element)) {
	if d.FunctionBlock != nil {
		walkChild(d.FunctionBlock.Block)
	}
}

func (d *InitializerDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *InitializerDeclaration) EndPosition() Position {
	if d.FunctionBlock != nil {
		return d.FunctionBlock.EndPosition()
	}
	return d.StartPos
}

func (d *InitializerDeclaration) MarshalJSON() ([]byte, error) {
	type Alias InitializerDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "InitializerDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
