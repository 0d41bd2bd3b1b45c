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
	"fmt"
	"strings"

	"github.com/turbolent/prettier"
)

type Type interface {
	fmt.Stringer
	isType()
	Equal(other Type) bool
	Doc() prettier.Doc
}

// NominalType represents a named type,
// optionally resolved to its declaration.
type NominalType struct {
	Declaration *CompositeDeclaration `json:"-"`
	Identifier  Identifier
}

var _ Type = &NominalType{}

func (*NominalType) isType() {}

func (t *NominalType) String() string {
	return t.Identifier.Identifier
}

func (t *NominalType) Equal(other Type) bool {
	otherType, ok := other.(*NominalType)
	if !ok {
		return false
	}
	if t.Declaration != nil || otherType.Declaration != nil {
		return t.Declaration == otherType.Declaration
	}
	return t.Identifier.Identifier == otherType.Identifier.Identifier
}

func (t *NominalType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

// OptionalType represents an optional of another type, `T?`
type OptionalType struct {
	Type Type
}

var _ Type = &OptionalType{}

func (*OptionalType) isType() {}

func (t *OptionalType) String() string {
	return t.Type.String() + "?"
}

func (t *OptionalType) Equal(other Type) bool {
	otherType, ok := other.(*OptionalType)
	return ok && t.Type.Equal(otherType.Type)
}

func (t *OptionalType) Doc() prettier.Doc {
	return prettier.Concat{
		t.Type.Doc(),
		prettier.Text("?"),
	}
}

// UnwrapOptionalType returns the element type if the given type
// is an optional, and reports whether it was.
func UnwrapOptionalType(t Type) (Type, bool) {
	if optionalType, ok := t.(*OptionalType); ok {
		return optionalType.Type, true
	}
	return t, false
}

// InOutType represents a type passed by reference, `inout T`
type InOutType struct {
	Type Type
}

var _ Type = &InOutType{}

func (*InOutType) isType() {}

func (t *InOutType) String() string {
	return "inout " + t.Type.String()
}

func (t *InOutType) Equal(other Type) bool {
	otherType, ok := other.(*InOutType)
	return ok && t.Type.Equal(otherType.Type)
}

func (t *InOutType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("inout "),
		t.Type.Doc(),
	}
}

// TupleType represents a tuple of types.
// The empty tuple is the unit ("void") type.
type TupleType struct {
	Types []Type
}

var _ Type = &TupleType{}

// NewVoidType returns the empty tuple type.
func NewVoidType() *TupleType {
	return &TupleType{}
}

func (*TupleType) isType() {}

func (t *TupleType) String() string {
	var builder strings.Builder
	builder.WriteByte('(')
	for i, ty := range t.Types {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(ty.String())
	}
	builder.WriteByte(')')
	return builder.String()
}

func (t *TupleType) Equal(other Type) bool {
	otherType, ok := other.(*TupleType)
	if !ok || len(t.Types) != len(otherType.Types) {
		return false
	}
	for i, ty := range t.Types {
		if !ty.Equal(otherType.Types[i]) {
			return false
		}
	}
	return true
}

func (t *TupleType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

// IsVoid returns true if the tuple is empty.
func (t *TupleType) IsVoid() bool {
	return len(t.Types) == 0
}

// FunctionType represents a function value's type.
// A thin function carries no context and cannot capture.
type FunctionType struct {
	ParameterTypes []Type
	ReturnType     Type
	Thin           bool
}

var _ Type = &FunctionType{}

func (*FunctionType) isType() {}

func (t *FunctionType) String() string {
	var builder strings.Builder
	if t.Thin {
		builder.WriteString("@convention(thin) ")
	}
	builder.WriteByte('(')
	for i, parameterType := range t.ParameterTypes {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(parameterType.String())
	}
	builder.WriteString(") -> ")
	builder.WriteString(t.ReturnType.String())
	return builder.String()
}

func (t *FunctionType) Equal(other Type) bool {
	otherType, ok := other.(*FunctionType)
	if !ok ||
		t.Thin != otherType.Thin ||
		len(t.ParameterTypes) != len(otherType.ParameterTypes) ||
		!t.ReturnType.Equal(otherType.ReturnType) {

		return false
	}
	for i, parameterType := range t.ParameterTypes {
		if !parameterType.Equal(otherType.ParameterTypes[i]) {
			return false
		}
	}
	return true
}

func (t *FunctionType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

// MetatypeType represents the type of a type, `T.Type`
type MetatypeType struct {
	Type  Type
	Thick bool
}

var _ Type = &MetatypeType{}

func (*MetatypeType) isType() {}

func (t *MetatypeType) String() string {
	return t.Type.String() + ".Type"
}

func (t *MetatypeType) Equal(other Type) bool {
	otherType, ok := other.(*MetatypeType)
	return ok && t.Type.Equal(otherType.Type)
}

func (t *MetatypeType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

// RawPointerType is the builtin untyped pointer type,
// used in the materializeForSet accessor's signature.
type RawPointerType struct{}

var _ Type = &RawPointerType{}

func (*RawPointerType) isType() {}

func (*RawPointerType) String() string {
	return "Builtin.RawPointer"
}

func (*RawPointerType) Equal(other Type) bool {
	_, ok := other.(*RawPointerType)
	return ok
}

func (t *RawPointerType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

// UnsafeValueBufferType is the builtin scratch-storage slot type,
// used in the materializeForSet accessor's signature.
type UnsafeValueBufferType struct{}

var _ Type = &UnsafeValueBufferType{}

func (*UnsafeValueBufferType) isType() {}

func (*UnsafeValueBufferType) String() string {
	return "Builtin.UnsafeValueBuffer"
}

func (*UnsafeValueBufferType) Equal(other Type) bool {
	_, ok := other.(*UnsafeValueBufferType)
	return ok
}

func (t *UnsafeValueBufferType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

// TypeAnnotation

type TypeAnnotation struct {
	Type     Type
	StartPos Position `json:"-"`
}

func NewTypeAnnotation(ty Type) *TypeAnnotation {
	return &TypeAnnotation{Type: ty}
}

func (t *TypeAnnotation) String() string {
	return t.Type.String()
}

func (t *TypeAnnotation) StartPosition() Position {
	return t.StartPos
}

func (t *TypeAnnotation) EndPosition() Position {
	return t.StartPos
}

func (t *TypeAnnotation) Doc() prettier.Doc {
	return t.Type.Doc()
}
