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
	"github.com/stretchr/testify/require"
)

func newParameterTestAnnotation(name string) *TypeAnnotation {
	return NewTypeAnnotation(&NominalType{Identifier: Identifier{Identifier: name}})
}

func TestParameterArgumentLabel(t *testing.T) {

	t.Parallel()

	t.Run("explicit label", func(t *testing.T) {

		t.Parallel()

		parameter := NewImplicitParameter("with", "value", newParameterTestAnnotation("Int"))
		assert.Equal(t, "with", parameter.ArgumentLabel())
	})

	t.Run("label defaults to the parameter name", func(t *testing.T) {

		t.Parallel()

		parameter := NewImplicitParameter("", "value", newParameterTestAnnotation("Int"))
		assert.Equal(t, "value", parameter.ArgumentLabel())
	})
}

func TestParameterIsInOut(t *testing.T) {

	t.Parallel()

	t.Run("in-out type annotation", func(t *testing.T) {

		t.Parallel()

		parameter := NewImplicitParameter(
			"",
			"self",
			NewTypeAnnotation(&InOutType{
				Type: &NominalType{Identifier: Identifier{Identifier: "Point"}},
			}),
		)
		assert.True(t, parameter.IsInOut())
	})

	t.Run("plain type annotation", func(t *testing.T) {

		t.Parallel()

		parameter := NewImplicitParameter("", "value", newParameterTestAnnotation("Int"))
		assert.False(t, parameter.IsInOut())
	})

	t.Run("missing type annotation", func(t *testing.T) {

		t.Parallel()

		parameter := &Parameter{Identifier: Identifier{Identifier: "value"}}
		assert.False(t, parameter.IsInOut())
	})
}

func TestParameterListPredicates(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {

		t.Parallel()

		var nilList *ParameterList
		assert.True(t, nilList.IsEmpty())
		assert.True(t, NewImplicitParameterList().IsEmpty())

		list := NewImplicitParameterList(
			NewImplicitParameter("", "value", newParameterTestAnnotation("Int")),
		)
		assert.False(t, list.IsEmpty())
	})

	t.Run("variadic", func(t *testing.T) {

		t.Parallel()

		variadic := NewImplicitParameter("", "rest", newParameterTestAnnotation("Int"))
		variadic.Variadic = true

		list := NewImplicitParameterList(
			NewImplicitParameter("", "first", newParameterTestAnnotation("Int")),
			variadic,
		)
		assert.True(t, list.HasVariadicParameter())

		assert.False(t, NewImplicitParameterList().HasVariadicParameter())
	})
}

func TestParameterListClone(t *testing.T) {

	t.Parallel()

	newList := func() *ParameterList {
		first := NewImplicitParameter("with", "value", newParameterTestAnnotation("Int"))
		first.DefaultValue = NewImplicitNilExpression()
		second := NewImplicitParameter("", "count", newParameterTestAnnotation("Int"))
		return NewImplicitParameterList(first, second)
	}

	t.Run("copies parameters and drops default values", func(t *testing.T) {

		t.Parallel()

		original := newList()
		clone := original.Clone(0)

		require.Len(t, clone.Parameters, 2)
		for i, parameter := range clone.Parameters {
			assert.NotSame(t, original.Parameters[i], parameter)
			assert.Nil(t, parameter.DefaultValue)
		}

		assert.Equal(t, "with", clone.Parameters[0].Label)
		assert.Equal(t, "value", clone.Parameters[0].Identifier.Identifier)
		assert.Same(t,
			original.Parameters[0].TypeAnnotation,
			clone.Parameters[0].TypeAnnotation,
		)

		// the original keeps its default value
		assert.NotNil(t, original.Parameters[0].DefaultValue)
	})

	t.Run("implicit flag", func(t *testing.T) {

		t.Parallel()

		clone := newList().Clone(ParameterCloneImplicit)
		for _, parameter := range clone.Parameters {
			assert.True(t, parameter.Implicit)
			assert.False(t, parameter.Inherited)
		}
	})

	t.Run("inherited flag", func(t *testing.T) {

		t.Parallel()

		clone := newList().Clone(ParameterCloneImplicit | ParameterCloneInherited)
		for _, parameter := range clone.Parameters {
			assert.True(t, parameter.Implicit)
			assert.True(t, parameter.Inherited)
		}
	})
}

func TestParameterListString(t *testing.T) {

	t.Parallel()

	variadic := NewImplicitParameter("", "rest", newParameterTestAnnotation("Int"))
	variadic.Variadic = true

	list := NewImplicitParameterList(
		NewImplicitParameter("with", "value", newParameterTestAnnotation("Int")),
		NewImplicitParameter("", "count", newParameterTestAnnotation("Int")),
		variadic,
	)

	assert.Equal(t, "with value: Int, count: Int, rest: Int...", list.String())
}
