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
	"fmt"
	"strconv"

	"github.com/turbolent/prettier"
)

type Expression interface {
	Element
	fmt.Stringer
	HasDoc
	isExpression()
	// Implicit reports whether the expression was produced by the compiler
	// rather than written in source.
	IsImplicit() bool
}

// NilExpression

type NilExpression struct {
	Implicit bool `json:"-"`
	Pos      Position
}

var _ Expression = &NilExpression{}

func NewNilExpression(pos Position) *NilExpression {
	return &NilExpression{Pos: pos}
}

func NewImplicitNilExpression() *NilExpression {
	return &NilExpression{Implicit: true}
}

func (*NilExpression) isExpression() {}

func (e *NilExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *NilExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *NilExpression) String() string {
	return Prettier(e)
}

const nilExpressionDoc = prettier.Text("nil")

func (e *NilExpression) Doc() prettier.Doc {
	return nilExpressionDoc
}

func (e *NilExpression) StartPosition() Position {
	return e.Pos
}

func (e *NilExpression) EndPosition() Position {
	return e.Pos.Shifted(len("nil") - 1)
}

func (e *NilExpression) MarshalJSON() ([]byte, error) {
	type Alias NilExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "NilExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// StringExpression

type StringExpression struct {
	Value    string
	Implicit bool `json:"-"`
	Range
}

var _ Expression = &StringExpression{}

func NewStringExpression(value string, exprRange Range) *StringExpression {
	return &StringExpression{
		Value: value,
		Range: exprRange,
	}
}

func NewImplicitStringExpression(value string) *StringExpression {
	return &StringExpression{
		Value:    value,
		Implicit: true,
	}
}

func (*StringExpression) isExpression() {}

func (e *StringExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *StringExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *StringExpression) String() string {
	return Prettier(e)
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text(strconv.Quote(e.Value))
}

func (e *StringExpression) MarshalJSON() ([]byte, error) {
	type Alias StringExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "StringExpression",
		Alias: (*Alias)(e),
	})
}

// IdentifierExpression

// IdentifierExpression is an unresolved reference to a name.
type IdentifierExpression struct {
	Identifier Identifier
	Implicit   bool `json:"-"`
}

var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(identifier Identifier) *IdentifierExpression {
	return &IdentifierExpression{Identifier: identifier}
}

func NewImplicitIdentifierExpression(name string) *IdentifierExpression {
	return &IdentifierExpression{
		Identifier: Identifier{Identifier: name},
		Implicit:   true,
	}
}

func (*IdentifierExpression) isExpression() {}

func (e *IdentifierExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IdentifierExpression) String() string {
	return Prettier(e)
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "IdentifierExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// DeclarationReferenceExpression

// DeclarationReferenceExpression is a resolved reference to a declaration.
// The access semantics record whether the reference goes through the
// declaration's accessors or directly to its storage.
type DeclarationReferenceExpression struct {
	Declaration NamedDeclaration `json:"-"`
	Semantics   AccessSemantics
	Pos         Position
}

var _ Expression = &DeclarationReferenceExpression{}

func NewDeclarationReferenceExpression(
	declaration NamedDeclaration,
	semantics AccessSemantics,
) *DeclarationReferenceExpression {
	return &DeclarationReferenceExpression{
		Declaration: declaration,
		Semantics:   semantics,
	}
}

func (*DeclarationReferenceExpression) isExpression() {}

func (e *DeclarationReferenceExpression) IsImplicit() bool {
	return true
}

func (e *DeclarationReferenceExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *DeclarationReferenceExpression) String() string {
	return Prettier(e)
}

func (e *DeclarationReferenceExpression) Doc() prettier.Doc {
	return prettier.Text(e.Declaration.DeclarationIdentifier().Identifier)
}

func (e *DeclarationReferenceExpression) StartPosition() Position {
	return e.Pos
}

func (e *DeclarationReferenceExpression) EndPosition() Position {
	return e.Pos
}

func (e *DeclarationReferenceExpression) MarshalJSON() ([]byte, error) {
	type Alias DeclarationReferenceExpression
	return json.Marshal(&struct {
		*Alias
		Type       string
		Identifier string
	}{
		Type:       "DeclarationReferenceExpression",
		Identifier: e.Declaration.DeclarationIdentifier().Identifier,
		Alias:      (*Alias)(e),
	})
}

// SuperExpression

type SuperExpression struct {
	Implicit bool `json:"-"`
	Pos      Position
}

var _ Expression = &SuperExpression{}

func NewImplicitSuperExpression() *SuperExpression {
	return &SuperExpression{Implicit: true}
}

func (*SuperExpression) isExpression() {}

func (e *SuperExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *SuperExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *SuperExpression) String() string {
	return Prettier(e)
}

const superExpressionDoc = prettier.Text("super")

func (e *SuperExpression) Doc() prettier.Doc {
	return superExpressionDoc
}

func (e *SuperExpression) StartPosition() Position {
	return e.Pos
}

func (e *SuperExpression) EndPosition() Position {
	return e.Pos.Shifted(len("super") - 1)
}

func (e *SuperExpression) MarshalJSON() ([]byte, error) {
	type Alias SuperExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "SuperExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// MemberReferenceExpression

// MemberReferenceExpression is a resolved member access `base.member`,
// where the member declaration is known.
type MemberReferenceExpression struct {
	Base        Expression
	Declaration NamedDeclaration `json:"-"`
	Semantics   AccessSemantics
}

var _ Expression = &MemberReferenceExpression{}

func NewMemberReferenceExpression(
	base Expression,
	declaration NamedDeclaration,
	semantics AccessSemantics,
) *MemberReferenceExpression {
	return &MemberReferenceExpression{
		Base:        base,
		Declaration: declaration,
		Semantics:   semantics,
	}
}

func (*MemberReferenceExpression) isExpression() {}

func (e *MemberReferenceExpression) IsImplicit() bool {
	return true
}

func (e *MemberReferenceExpression) Walk(walkChild func(Element)) {
	walkChild(e.Base)
}

func (e *MemberReferenceExpression) String() string {
	return Prettier(e)
}

func (e *MemberReferenceExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Base.Doc(),
		prettier.Text("."),
		prettier.Text(e.Declaration.DeclarationIdentifier().Identifier),
	}
}

func (e *MemberReferenceExpression) StartPosition() Position {
	return e.Base.StartPosition()
}

func (e *MemberReferenceExpression) EndPosition() Position {
	return e.Base.EndPosition()
}

func (e *MemberReferenceExpression) MarshalJSON() ([]byte, error) {
	type Alias MemberReferenceExpression
	return json.Marshal(&struct {
		*Alias
		Type       string
		Identifier string
	}{
		Type:       "MemberReferenceExpression",
		Identifier: e.Declaration.DeclarationIdentifier().Identifier,
		Alias:      (*Alias)(e),
	})
}

// MemberExpression

// MemberExpression is an unresolved member access `base.name`,
// left for the type checker to resolve.
type MemberExpression struct {
	Expression Expression
	Identifier Identifier
	Implicit   bool `json:"-"`
}

var _ Expression = &MemberExpression{}

func NewMemberExpression(expression Expression, identifier Identifier) *MemberExpression {
	return &MemberExpression{
		Expression: expression,
		Identifier: identifier,
	}
}

func NewImplicitMemberExpression(expression Expression, name string) *MemberExpression {
	return &MemberExpression{
		Expression: expression,
		Identifier: Identifier{Identifier: name},
		Implicit:   true,
	}
}

func (*MemberExpression) isExpression() {}

func (e *MemberExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *MemberExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *MemberExpression) String() string {
	return Prettier(e)
}

func (e *MemberExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text("."),
		prettier.Text(e.Identifier.Identifier),
	}
}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *MemberExpression) MarshalJSON() ([]byte, error) {
	type Alias MemberExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "MemberExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// IndexReferenceExpression

// IndexReferenceExpression is a resolved subscript access `base[index]`.
type IndexReferenceExpression struct {
	Base        Expression
	Declaration *SubscriptDeclaration `json:"-"`
	Index       Expression
	Semantics   AccessSemantics
}

var _ Expression = &IndexReferenceExpression{}

func NewIndexReferenceExpression(
	base Expression,
	declaration *SubscriptDeclaration,
	index Expression,
	semantics AccessSemantics,
) *IndexReferenceExpression {
	return &IndexReferenceExpression{
		Base:        base,
		Declaration: declaration,
		Index:       index,
		Semantics:   semantics,
	}
}

func (*IndexReferenceExpression) isExpression() {}

func (e *IndexReferenceExpression) IsImplicit() bool {
	return true
}

func (e *IndexReferenceExpression) Walk(walkChild func(Element)) {
	walkChild(e.Base)
	walkChild(e.Index)
}

func (e *IndexReferenceExpression) String() string {
	return Prettier(e)
}

func (e *IndexReferenceExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Base.Doc(),
		prettier.Text("["),
		e.Index.Doc(),
		prettier.Text("]"),
	}
}

func (e *IndexReferenceExpression) StartPosition() Position {
	return e.Base.StartPosition()
}

func (e *IndexReferenceExpression) EndPosition() Position {
	return e.Index.EndPosition()
}

func (e *IndexReferenceExpression) MarshalJSON() ([]byte, error) {
	type Alias IndexReferenceExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "IndexReferenceExpression",
		Alias: (*Alias)(e),
	})
}

// TupleExpression

type TupleExpression struct {
	Elements []Expression
	Implicit bool `json:"-"`
	Range
}

var _ Expression = &TupleExpression{}

func NewImplicitTupleExpression(elements ...Expression) *TupleExpression {
	return &TupleExpression{
		Elements: elements,
		Implicit: true,
	}
}

func (*TupleExpression) isExpression() {}

func (e *TupleExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *TupleExpression) Walk(walkChild func(Element)) {
	for _, element := range e.Elements {
		walkChild(element)
	}
}

func (e *TupleExpression) String() string {
	return Prettier(e)
}

func (e *TupleExpression) Doc() prettier.Doc {
	doc := make(prettier.Concat, 0, len(e.Elements)*2+1)
	doc = append(doc, prettier.Text("("))
	for i, element := range e.Elements {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, element.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (e *TupleExpression) MarshalJSON() ([]byte, error) {
	type Alias TupleExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "TupleExpression",
		Alias: (*Alias)(e),
	})
}

// InOutExpression

// InOutExpression marks an argument passed by reference, `&expr`
type InOutExpression struct {
	Expression Expression
	Implicit   bool `json:"-"`
	Pos        Position
}

var _ Expression = &InOutExpression{}

func NewImplicitInOutExpression(expression Expression) *InOutExpression {
	return &InOutExpression{
		Expression: expression,
		Implicit:   true,
	}
}

func (*InOutExpression) isExpression() {}

func (e *InOutExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *InOutExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *InOutExpression) String() string {
	return Prettier(e)
}

func (e *InOutExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("&"),
		e.Expression.Doc(),
	}
}

func (e *InOutExpression) StartPosition() Position {
	return e.Pos
}

func (e *InOutExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (e *InOutExpression) MarshalJSON() ([]byte, error) {
	type Alias InOutExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "InOutExpression",
		Alias: (*Alias)(e),
	})
}

// InvocationExpression

type InvocationExpression struct {
	InvokedExpression Expression
	Arguments         Arguments
	Implicit          bool `json:"-"`
	EndPos            Position
}

var _ Expression = &InvocationExpression{}

func NewInvocationExpression(
	invokedExpression Expression,
	arguments Arguments,
	endPos Position,
) *InvocationExpression {
	return &InvocationExpression{
		InvokedExpression: invokedExpression,
		Arguments:         arguments,
		EndPos:            endPos,
	}
}

func NewImplicitInvocationExpression(
	invokedExpression Expression,
	arguments Arguments,
) *InvocationExpression {
	return &InvocationExpression{
		InvokedExpression: invokedExpression,
		Arguments:         arguments,
		Implicit:          true,
	}
}

func (*InvocationExpression) isExpression() {}

func (e *InvocationExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *InvocationExpression) Walk(walkChild func(Element)) {
	walkChild(e.InvokedExpression)
	for _, argument := range e.Arguments {
		walkChild(argument.Expression)
	}
}

func (e *InvocationExpression) String() string {
	return Prettier(e)
}

func (e *InvocationExpression) Doc() prettier.Doc {
	doc := make(prettier.Concat, 0, len(e.Arguments)*2+2)
	doc = append(doc, e.InvokedExpression.Doc(), prettier.Text("("))
	for i, argument := range e.Arguments {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		if argument.Label != "" {
			doc = append(
				doc,
				prettier.Text(argument.Label),
				prettier.Text(": "),
			)
		}
		doc = append(doc, argument.Expression.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (e *InvocationExpression) StartPosition() Position {
	return e.InvokedExpression.StartPosition()
}

func (e *InvocationExpression) EndPosition() Position {
	return e.EndPos
}

func (e *InvocationExpression) MarshalJSON() ([]byte, error) {
	type Alias InvocationExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "InvocationExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// ForceExpression

// ForceExpression unwraps an optional, trapping on nil, `expr!`
type ForceExpression struct {
	Expression Expression
	Implicit   bool `json:"-"`
	EndPos     Position
}

var _ Expression = &ForceExpression{}

func NewImplicitForceExpression(expression Expression) *ForceExpression {
	return &ForceExpression{
		Expression: expression,
		Implicit:   true,
	}
}

func (*ForceExpression) isExpression() {}

func (e *ForceExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *ForceExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *ForceExpression) String() string {
	return Prettier(e)
}

func (e *ForceExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text("!"),
	}
}

func (e *ForceExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *ForceExpression) EndPosition() Position {
	return e.EndPos
}

func (e *ForceExpression) MarshalJSON() ([]byte, error) {
	type Alias ForceExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "ForceExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// BindOptionalExpression

// BindOptionalExpression unwraps an optional inside an enclosing
// optional evaluation, short-circuiting the whole evaluation to nil
// when the operand is nil, `expr?`
type BindOptionalExpression struct {
	Expression Expression
	Implicit   bool `json:"-"`
	EndPos     Position
}

var _ Expression = &BindOptionalExpression{}

func NewImplicitBindOptionalExpression(expression Expression) *BindOptionalExpression {
	return &BindOptionalExpression{
		Expression: expression,
		Implicit:   true,
	}
}

func (*BindOptionalExpression) isExpression() {}

func (e *BindOptionalExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *BindOptionalExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *BindOptionalExpression) String() string {
	return Prettier(e)
}

func (e *BindOptionalExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text("?"),
	}
}

func (e *BindOptionalExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *BindOptionalExpression) EndPosition() Position {
	return e.EndPos
}

func (e *BindOptionalExpression) MarshalJSON() ([]byte, error) {
	type Alias BindOptionalExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "BindOptionalExpression",
		Alias: (*Alias)(e),
	})
}

// OptionalEvaluationExpression

// OptionalEvaluationExpression delimits the scope of the optional
// bindings nested inside it and wraps their result in an optional.
type OptionalEvaluationExpression struct {
	Expression Expression
}

var _ Expression = &OptionalEvaluationExpression{}

func NewOptionalEvaluationExpression(expression Expression) *OptionalEvaluationExpression {
	return &OptionalEvaluationExpression{Expression: expression}
}

func (*OptionalEvaluationExpression) isExpression() {}

func (e *OptionalEvaluationExpression) IsImplicit() bool {
	return true
}

func (e *OptionalEvaluationExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *OptionalEvaluationExpression) String() string {
	return Prettier(e)
}

func (e *OptionalEvaluationExpression) Doc() prettier.Doc {
	return e.Expression.Doc()
}

func (e *OptionalEvaluationExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *OptionalEvaluationExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (e *OptionalEvaluationExpression) MarshalJSON() ([]byte, error) {
	type Alias OptionalEvaluationExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "OptionalEvaluationExpression",
		Alias: (*Alias)(e),
	})
}

// CastingExpression

type CastingExpression struct {
	Expression     Expression
	Operation      Operation
	TypeAnnotation *TypeAnnotation
	Implicit       bool `json:"-"`
}

var _ Expression = &CastingExpression{}

func NewImplicitCastingExpression(
	expression Expression,
	operation Operation,
	typeAnnotation *TypeAnnotation,
) *CastingExpression {
	return &CastingExpression{
		Expression:     expression,
		Operation:      operation,
		TypeAnnotation: typeAnnotation,
		Implicit:       true,
	}
}

func (*CastingExpression) isExpression() {}

func (e *CastingExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *CastingExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *CastingExpression) String() string {
	return Prettier(e)
}

func (e *CastingExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text(" "),
		prettier.Text(e.Operation.Symbol()),
		prettier.Text(" "),
		e.TypeAnnotation.Doc(),
	}
}

func (e *CastingExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *CastingExpression) EndPosition() Position {
	return e.TypeAnnotation.EndPosition()
}

func (e *CastingExpression) MarshalJSON() ([]byte, error) {
	type Alias CastingExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "CastingExpression",
		Alias: (*Alias)(e),
	})
}

// TryExpression

type TryExpression struct {
	Expression Expression
	Implicit   bool `json:"-"`
	StartPos   Position
}

var _ Expression = &TryExpression{}

func NewImplicitTryExpression(expression Expression) *TryExpression {
	return &TryExpression{
		Expression: expression,
		Implicit:   true,
	}
}

func (*TryExpression) isExpression() {}

func (e *TryExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *TryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *TryExpression) String() string {
	return Prettier(e)
}

func (e *TryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("try "),
		e.Expression.Doc(),
	}
}

func (e *TryExpression) StartPosition() Position {
	return e.StartPos
}

func (e *TryExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (e *TryExpression) MarshalJSON() ([]byte, error) {
	type Alias TryExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "TryExpression",
		Alias: (*Alias)(e),
	})
}

// FunctionExpression

// FunctionExpression is a closure. It is a declaration context:
// code nested inside it belongs to it, not to the surrounding scope.
type FunctionExpression struct {
	ParameterList        *ParameterList
	ReturnTypeAnnotation *TypeAnnotation
	FunctionBlock        *FunctionBlock
	Implicit             bool               `json:"-"`
	Parent               DeclarationContext `json:"-"`
	StartPos             Position
}

var _ Expression = &FunctionExpression{}
var _ DeclarationContext = &FunctionExpression{}

func NewFunctionExpression(
	parameterList *ParameterList,
	returnTypeAnnotation *TypeAnnotation,
	functionBlock *FunctionBlock,
) *FunctionExpression {
	return &FunctionExpression{
		ParameterList:        parameterList,
		ReturnTypeAnnotation: returnTypeAnnotation,
		FunctionBlock:        functionBlock,
	}
}

func (*FunctionExpression) isExpression() {}

func (*FunctionExpression) isDeclarationContext() {}

func (e *FunctionExpression) IsImplicit() bool {
	return e.Implicit
}

func (e *FunctionExpression) ContextParent() DeclarationContext {
	return e.Parent
}

func (e *FunctionExpression) ContextMembers() *Members {
	return nil
}

func (e *FunctionExpression) IsTypeContext() bool {
	return false
}

func (e *FunctionExpression) IsLocalContext() bool {
	return true
}

func (e *FunctionExpression) Walk(walkChild func(Element)) {
	if e.FunctionBlock != nil {
		walkChild(e.FunctionBlock.Block)
	}
}

func (e *FunctionExpression) String() string {
	return Prettier(e)
}

func (e *FunctionExpression) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("{"),
	}
	if e.ParameterList != nil && len(e.ParameterList.Parameters) > 0 {
		doc = append(
			doc,
			prettier.Text(" "),
			e.ParameterList.Doc(),
			prettier.Text(" in"),
		)
	}
	if e.FunctionBlock != nil {
		doc = append(
			doc,
			prettier.Text(" "),
			e.FunctionBlock.Block.InlineDoc(),
			prettier.Text(" "),
		)
	}
	return append(doc, prettier.Text("}"))
}

func (e *FunctionExpression) StartPosition() Position {
	return e.StartPos
}

func (e *FunctionExpression) EndPosition() Position {
	if e.FunctionBlock != nil {
		return e.FunctionBlock.EndPosition()
	}
	return e.StartPos
}

func (e *FunctionExpression) MarshalJSON() ([]byte, error) {
	type Alias FunctionExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "FunctionExpression",
		Alias: (*Alias)(e),
	})
}
