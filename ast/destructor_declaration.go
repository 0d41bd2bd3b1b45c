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

// DestructorDeclaration is a class destructor.
// Every class has one; most are synthesized with an empty body.
type DestructorDeclaration struct {
	Identifier    Identifier
	SelfParameter *Parameter `json:"-"`
	FunctionBlock *FunctionBlock
	Implicit      bool

	Parent    DeclarationContext `json:"-"`
	DocString string
	StartPos  Position `json:"-"`
}

var _ Declaration = &DestructorDeclaration{}
var _ DeclarationContext = &DestructorDeclaration{}

func NewDestructorDeclaration(
	functionBlock *FunctionBlock,
	parent DeclarationContext,
	startPos Position,
) *DestructorDeclaration {
	return &DestructorDeclaration{
		Identifier:    Identifier{Identifier: "deinit"},
		FunctionBlock: functionBlock,
		Parent:        parent,
		StartPos:      startPos,
	}
}

func (*DestructorDeclaration) isDeclaration() {}

func (*DestructorDeclaration) isDeclarationContext() {}

func (d *DestructorDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *DestructorDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindDestructor
}

func (d *DestructorDeclaration) DeclarationAccess() common.Accessibility {
	return common.AccessibilityNotSpecified
}

func (d *DestructorDeclaration) DeclarationMembers() *Members {
	return nil
}

func (d *DestructorDeclaration) DeclarationDocString() string {
	return d.DocString
}

func (d *DestructorDeclaration) ContextParent() DeclarationContext {
	return d.Parent
}

func (d *DestructorDeclaration) ContextMembers() *Members {
	return nil
}

func (d *DestructorDeclaration) IsTypeContext() bool {
	return false
}

func (d *DestructorDeclaration) IsLocalContext() bool {
	return true
}

func (d *DestructorDeclaration) Walk(walkChild func(Element)) {
	if d.FunctionBlock != nil {
		walkChild(d.FunctionBlock.Block)
	}
}

func (d *DestructorDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *DestructorDeclaration) EndPosition() Position {
	if d.FunctionBlock != nil {
		return d.FunctionBlock.EndPosition()
	}
	return d.StartPos
}

func (d *DestructorDeclaration) MarshalJSON() ([]byte, error) {
	type Alias DestructorDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "DestructorDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
