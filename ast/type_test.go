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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tienex/swift/common"
)

func newNominalType(name string) *NominalType {
	return &NominalType{Identifier: Identifier{Identifier: name}}
}

func TestTypeString(t *testing.T) {

	t.Parallel()

	t.Run("optional", func(t *testing.T) {

		t.Parallel()

		ty := &OptionalType{Type: newNominalType("Int")}
		assert.Equal(t, "Int?", ty.String())
	})

	t.Run("in-out", func(t *testing.T) {

		t.Parallel()

		ty := &InOutType{Type: newNominalType("Point")}
		assert.Equal(t, "inout Point", ty.String())
	})

	t.Run("metatype", func(t *testing.T) {

		t.Parallel()

		ty := &MetatypeType{Type: newNominalType("Point")}
		assert.Equal(t, "Point.Type", ty.String())
	})

	t.Run("void", func(t *testing.T) {

		t.Parallel()

		assert.Equal(t, "()", NewVoidType().String())
		assert.True(t, NewVoidType().IsVoid())
	})

	t.Run("tuple", func(t *testing.T) {

		t.Parallel()

		ty := &TupleType{
			Types: []Type{
				&RawPointerType{},
				newNominalType("Int"),
			},
		}
		assert.Equal(t, "(Builtin.RawPointer, Int)", ty.String())
		assert.False(t, ty.IsVoid())
	})

	t.Run("thin function", func(t *testing.T) {

		t.Parallel()

		ty := &FunctionType{
			ParameterTypes: []Type{
				&RawPointerType{},
				&UnsafeValueBufferType{},
			},
			ReturnType: NewVoidType(),
			Thin:       true,
		}
		assert.Equal(
			t,
			"@convention(thin) (Builtin.RawPointer, Builtin.UnsafeValueBuffer) -> ()",
			ty.String(),
		)
	})
}

func TestTypeEqual(t *testing.T) {

	t.Parallel()

	t.Run("nominal by identifier", func(t *testing.T) {

		t.Parallel()

		assert.True(t, newNominalType("Int").Equal(newNominalType("Int")))
		assert.False(t, newNominalType("Int").Equal(newNominalType("String")))
	})

	t.Run("nominal by declaration", func(t *testing.T) {

		t.Parallel()

		declaration := NewCompositeDeclaration(
			common.AccessibilityInternal,
			common.CompositeKindStructure,
			Identifier{Identifier: "Point"},
			nil,
			nil,
			"",
			Range{},
		)
		other := NewCompositeDeclaration(
			common.AccessibilityInternal,
			common.CompositeKindStructure,
			Identifier{Identifier: "Point"},
			nil,
			nil,
			"",
			Range{},
		)

		assert.True(t, declaration.DeclaredType().Equal(declaration.DeclaredType()))

		// same name, different declarations
		assert.False(t, declaration.DeclaredType().Equal(other.DeclaredType()))

		// a resolved type never equals an unresolved one
		assert.False(t, declaration.DeclaredType().Equal(newNominalType("Point")))
	})

	t.Run("optional element", func(t *testing.T) {

		t.Parallel()

		optional := &OptionalType{Type: newNominalType("Int")}
		assert.True(t, optional.Equal(&OptionalType{Type: newNominalType("Int")}))
		assert.False(t, optional.Equal(newNominalType("Int")))
	})

	t.Run("function", func(t *testing.T) {

		t.Parallel()

		thin := &FunctionType{
			ParameterTypes: []Type{&RawPointerType{}},
			ReturnType:     NewVoidType(),
			Thin:           true,
		}
		thick := &FunctionType{
			ParameterTypes: []Type{&RawPointerType{}},
			ReturnType:     NewVoidType(),
		}
		assert.False(t, thin.Equal(thick))
		assert.True(t, thin.Equal(&FunctionType{
			ParameterTypes: []Type{&RawPointerType{}},
			ReturnType:     NewVoidType(),
			Thin:           true,
		}))
	})
}

func TestUnwrapOptionalType(t *testing.T) {

	t.Parallel()

	inner := newNominalType("Int")

	unwrapped, wasOptional := UnwrapOptionalType(&OptionalType{Type: inner})
	assert.True(t, wasOptional)
	assert.Same(t, inner, unwrapped)

	unwrapped, wasOptional = UnwrapOptionalType(inner)
	assert.False(t, wasOptional)
	assert.Same(t, inner, unwrapped)
}
