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

type Statement interface {
	Element
	isStatement()
}

// ReturnStatement

type ReturnStatement struct {
	// Expression is nil for a bare `return`
	Expression Expression
	Implicit   bool `json:"-"`
	Range
}

var _ Statement = &ReturnStatement{}

func NewReturnStatement(expression Expression, stmtRange Range) *ReturnStatement {
	return &ReturnStatement{
		Expression: expression,
		Range:      stmtRange,
	}
}

func NewImplicitReturnStatement(expression Expression) *ReturnStatement {
	return &ReturnStatement{
		Expression: expression,
		Implicit:   true,
	}
}

func (*ReturnStatement) isStatement() {}

func (s *ReturnStatement) Walk(walkChild func(Element)) {
	if s.Expression != nil {
		walkChild(s.Expression)
	}
}

func (s *ReturnStatement) Doc() prettier.Doc {
	if s.Expression == nil {
		return prettier.Text("return")
	}
	return prettier.Concat{
		prettier.Text("return "),
		s.Expression.Doc(),
	}
}

func (s *ReturnStatement) MarshalJSON() ([]byte, error) {
	type Alias ReturnStatement
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "ReturnStatement",
		Alias: (*Alias)(s),
	})
}

// IfStatement

type IfStatement struct {
	Test Expression
	Then *Block
	// Else is nil when there is no else branch
	Else     *Block
	Implicit bool     `json:"-"`
	StartPos Position `json:"-"`
}

var _ Statement = &IfStatement{}

func NewImplicitIfStatement(test Expression, then *Block, elseBlock *Block) *IfStatement {
	return &IfStatement{
		Test:     test,
		Then:     then,
		Else:     elseBlock,
		Implicit: true,
	}
}

func (*IfStatement) isStatement() {}

func (s *IfStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
	walkChild(s.Then)
	if s.Else != nil {
		walkChild(s.Else)
	}
}

func (s *IfStatement) StartPosition() Position {
	return s.StartPos
}

func (s *IfStatement) EndPosition() Position {
	if s.Else != nil {
		return s.Else.EndPosition()
	}
	return s.Then.EndPosition()
}

func (s *IfStatement) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("if "),
		s.Test.Doc(),
		prettier.Text(" { "),
		s.Then.InlineDoc(),
		prettier.Text(" }"),
	}
	if s.Else != nil {
		doc = append(
			doc,
			prettier.Text(" else { "),
			s.Else.InlineDoc(),
			prettier.Text(" }"),
		)
	}
	return doc
}

func (s *IfStatement) MarshalJSON() ([]byte, error) {
	type Alias IfStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "IfStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
}

var _ Statement = &ExpressionStatement{}

func NewExpressionStatement(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: expression}
}

func (*ExpressionStatement) isStatement() {}

func (s *ExpressionStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

func (s *ExpressionStatement) Doc() prettier.Doc {
	return s.Expression.Doc()
}

func (s *ExpressionStatement) MarshalJSON() ([]byte, error) {
	type Alias ExpressionStatement
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "ExpressionStatement",
		Alias: (*Alias)(s),
	})
}

// AssignmentStatement

type AssignmentStatement struct {
	Target Expression
	Value  Expression
	// Implicit assignments are produced by accessor synthesis
	Implicit bool `json:"-"`
}

var _ Statement = &AssignmentStatement{}

func NewImplicitAssignmentStatement(target, value Expression) *AssignmentStatement {
	return &AssignmentStatement{
		Target:   target,
		Value:    value,
		Implicit: true,
	}
}

func (*AssignmentStatement) isStatement() {}

func (s *AssignmentStatement) Walk(walkChild func(Element)) {
	walkChild(s.Target)
	walkChild(s.Value)
}

func (s *AssignmentStatement) StartPosition() Position {
	return s.Target.StartPosition()
}

func (s *AssignmentStatement) EndPosition() Position {
	return s.Value.EndPosition()
}

func (s *AssignmentStatement) Doc() prettier.Doc {
	return prettier.Concat{
		s.Target.Doc(),
		prettier.Text(" = "),
		s.Value.Doc(),
	}
}

func (s *AssignmentStatement) MarshalJSON() ([]byte, error) {
	type Alias AssignmentStatement
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "AssignmentStatement",
		Alias: (*Alias)(s),
	})
}
