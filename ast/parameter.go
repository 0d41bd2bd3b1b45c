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
)

// Parameter

type Parameter struct {
	// Label is the argument label, empty when the parameter has none
	Label          string
	Identifier     Identifier
	TypeAnnotation *TypeAnnotation
	// DefaultValue is nil when the parameter has no default
	DefaultValue Expression
	Variadic     bool
	Implicit     bool
	// Inherited marks a parameter cloned from a superclass initializer
	Inherited bool
	StartPos  Position `json:"-"`
}

func NewParameter(
	label string,
	identifier Identifier,
	typeAnnotation *TypeAnnotation,
	startPos Position,
) *Parameter {
	return &Parameter{
		Label:          label,
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		StartPos:       startPos,
	}
}

func NewImplicitParameter(label, name string, typeAnnotation *TypeAnnotation) *Parameter {
	return &Parameter{
		Label:          label,
		Identifier:     Identifier{Identifier: name},
		TypeAnnotation: typeAnnotation,
		Implicit:       true,
	}
}

func (p *Parameter) DeclarationIdentifier() *Identifier {
	return &p.Identifier
}

// ArgumentLabel returns the label with which arguments
// for this parameter must be passed.
func (p *Parameter) ArgumentLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Identifier.Identifier
}

func (p *Parameter) IsInOut() bool {
	if p.TypeAnnotation == nil {
		return false
	}
	_, ok := p.TypeAnnotation.Type.(*InOutType)
	return ok
}

func (p *Parameter) StartPosition() Position {
	return p.StartPos
}

func (p *Parameter) EndPosition() Position {
	if p.TypeAnnotation != nil {
		return p.TypeAnnotation.EndPosition()
	}
	return p.Identifier.EndPosition()
}

func (p *Parameter) String() string {
	return Prettier(p)
}

func (p *Parameter) Doc() prettier.Doc {
	doc := prettier.Concat{}
	if p.Label != "" && p.Label != p.Identifier.Identifier {
		doc = append(
			doc,
			prettier.Text(p.Label),
			prettier.Text(" "),
		)
	}
	doc = append(doc, prettier.Text(p.Identifier.Identifier))
	if p.TypeAnnotation != nil {
		doc = append(
			doc,
			prettier.Text(": "),
			p.TypeAnnotation.Doc(),
		)
	}
	if p.Variadic {
		doc = append(doc, prettier.Text("..."))
	}
	return doc
}

// ParameterCloneFlags control how Clone marks the copied parameters.
type ParameterCloneFlags uint8

const (
	ParameterCloneImplicit ParameterCloneFlags = 1 << iota
	ParameterCloneInherited
)

// ParameterList

type ParameterList struct {
	Parameters []*Parameter
	Range
}

func NewParameterList(parameters []*Parameter, listRange Range) *ParameterList {
	return &ParameterList{
		Parameters: parameters,
		Range:      listRange,
	}
}

func NewImplicitParameterList(parameters ...*Parameter) *ParameterList {
	return &ParameterList{Parameters: parameters}
}

func (l *ParameterList) IsEmpty() bool {
	return l == nil || len(l.Parameters) == 0
}

// HasVariadicParameter reports whether any parameter is variadic.
func (l *ParameterList) HasVariadicParameter() bool {
	for _, parameter := range l.Parameters {
		if parameter.Variadic {
			return true
		}
	}
	return false
}

// Clone copies the parameter list, without default values.
func (l *ParameterList) Clone(flags ParameterCloneFlags) *ParameterList {
	parameters := make([]*Parameter, len(l.Parameters))
	for i, parameter := range l.Parameters {
		clone := *parameter
		clone.DefaultValue = nil
		if flags&ParameterCloneImplicit != 0 {
			clone.Implicit = true
		}
		if flags&ParameterCloneInherited != 0 {
			clone.Inherited = true
		}
		parameters[i] = &clone
	}
	return &ParameterList{
		Parameters: parameters,
		Range:      l.Range,
	}
}

func (l *ParameterList) String() string {
	return Prettier(l)
}

func (l *ParameterList) Doc() prettier.Doc {
	doc := make(prettier.Concat, 0, len(l.Parameters)*2)
	for i, parameter := range l.Parameters {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, parameter.Doc())
	}
	return doc
}

func (l *ParameterList) MarshalJSON() ([]byte, error) {
	type Alias ParameterList
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "ParameterList",
		Alias: (*Alias)(l),
	})
}
