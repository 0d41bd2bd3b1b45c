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
	"github.com/tienex/swift/errors"
)

// FunctionDeclaration is a function or accessor declaration.
// Accessors have a non-unknown accessor kind and point back at the
// storage declaration they access.
type FunctionDeclaration struct {
	Access       common.Accessibility
	AccessorKind common.AccessorKind

	Identifier Identifier

	// SelfParameter is nil for functions outside a type context
	SelfParameter        *Parameter `json:"-"`
	ParameterList        *ParameterList
	ReturnTypeAnnotation *TypeAnnotation

	// FunctionBlock is nil while the body has not been synthesized yet
	FunctionBlock *FunctionBlock

	Static   bool
	Final    bool
	Mutating bool
	Dynamic  bool
	Implicit bool
	// Transparent marks the body as inlinable across module boundaries
	Transparent bool
	// ForcedStaticDispatch suppresses dynamic dispatch for this
	// function even in a class
	ForcedStaticDispatch bool

	// AccessorStorage is the storage declaration this accessor belongs
	// to, nil for ordinary functions
	AccessorStorage StorageDeclaration `json:"-"`

	Availability Availability

	Parent    DeclarationContext `json:"-"`
	DocString string
	StartPos  Position `json:"-"`
}

var _ Declaration = &FunctionDeclaration{}
var _ DeclarationContext = &FunctionDeclaration{}

func NewFunctionDeclaration(
	access common.Accessibility,
	identifier Identifier,
	parameterList *ParameterList,
	returnTypeAnnotation *TypeAnnotation,
	parent DeclarationContext,
	docString string,
	startPos Position,
) *FunctionDeclaration {
	return &FunctionDeclaration{
		Access:               access,
		Identifier:           identifier,
		ParameterList:        parameterList,
		ReturnTypeAnnotation: returnTypeAnnotation,
		Parent:               parent,
		DocString:            docString,
		StartPos:             startPos,
	}
}

func (*FunctionDeclaration) isDeclaration() {}

func (*FunctionDeclaration) isDeclarationContext() {}

func (d *FunctionDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *FunctionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

func (d *FunctionDeclaration) DeclarationAccess() common.Accessibility {
	return d.Access
}

func (d *FunctionDeclaration) DeclarationMembers() *Members {
	return nil
}

func (d *FunctionDeclaration) DeclarationDocString() string {
	return d.DocString
}

func (d *FunctionDeclaration) ContextParent() DeclarationContext {
	return d.Parent
}

func (d *FunctionDeclaration) ContextMembers() *Members {
	return nil
}

func (d *FunctionDeclaration) IsTypeContext() bool {
	return false
}

func (d *FunctionDeclaration) IsLocalContext() bool {
	return true
}

// IsAccessor reports whether the function is an accessor
// of a storage declaration.
func (d *FunctionDeclaration) IsAccessor() bool {
	return d.AccessorKind != common.AccessorKindUnknown
}

// IsObserver reports whether the function is a willSet or didSet observer.
func (d *FunctionDeclaration) IsObserver() bool {
	return d.AccessorKind.IsObserver()
}

// HasBody reports whether the function body has been provided,
// by the parser or by synthesis.
func (d *FunctionDeclaration) HasBody() bool {
	return d.FunctionBlock != nil
}

// SetFunctionBlock installs the synthesized body.
// A body may only be installed once.
func (d *FunctionDeclaration) SetFunctionBlock(functionBlock *FunctionBlock) {
	if d.FunctionBlock != nil {
		panic(errors.NewUnexpectedError(
			"function %s already has a body",
			d.Identifier.Identifier,
		))
	}
	d.FunctionBlock = functionBlock
}

func (d *FunctionDeclaration) Walk(walkChild func(Element)) {
	if d.FunctionBlock != nil {
		walkChild(d.FunctionBlock.Block)
	}
}

func (d *FunctionDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *FunctionDeclaration) EndPosition() Position {
	if d.FunctionBlock != nil {
		return d.FunctionBlock.EndPosition()
	}
	return d.StartPos
}

func (d *FunctionDeclaration) String() string {
	return Prettier(d)
}

func (d *FunctionDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{}
	if d.Static {
		doc = append(doc, prettier.Text("static "))
	}
	if d.Final {
		doc = append(doc, prettier.Text("final "))
	}
	if d.Mutating {
		doc = append(doc, prettier.Text("mutating "))
	}
	if d.IsAccessor() {
		doc = append(doc, prettier.Text(d.AccessorKind.Keyword()))
	} else {
		doc = append(
			doc,
			prettier.Text("func "),
			prettier.Text(d.Identifier.Identifier),
		)
	}
	doc = append(doc, prettier.Text("("))
	if d.ParameterList != nil {
		doc = append(doc, d.ParameterList.Doc())
	}
	doc = append(doc, prettier.Text(")"))
	if d.ReturnTypeAnnotation != nil {
		returnType := d.ReturnTypeAnnotation.Type
		if tupleType, ok := returnType.(*TupleType); !ok || !tupleType.IsVoid() {
			doc = append(
				doc,
				prettier.Text(" -> "),
				d.ReturnTypeAnnotation.Doc(),
			)
		}
	}
	if d.FunctionBlock != nil {
		doc = append(
			doc,
			prettier.Text(" { "),
			d.FunctionBlock.Block.InlineDoc(),
			prettier.Text(" }"),
		)
	}
	return doc
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "FunctionDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
