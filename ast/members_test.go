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

	"github.com/tienex/swift/common"
	"github.com/tienex/swift/test_utils"
)

func newMembersTestVariable(name string) *VariableDeclaration {
	return NewVariableDeclaration(
		common.AccessibilityInternal,
		false,
		Identifier{Identifier: name},
		NewTypeAnnotation(&NominalType{Identifier: Identifier{Identifier: "Int"}}),
		nil,
		nil,
		"",
		Range{},
	)
}

func newMembersTestFunction(name string) *FunctionDeclaration {
	return NewFunctionDeclaration(
		common.AccessibilityInternal,
		Identifier{Identifier: name},
		NewImplicitParameterList(),
		nil,
		nil,
		"",
		Position{},
	)
}

func TestMembersInsertAfter(t *testing.T) {

	t.Parallel()

	t.Run("inserts directly after the given member", func(t *testing.T) {

		t.Parallel()

		first := newMembersTestVariable("first")
		second := newMembersTestVariable("second")
		members := NewMembers([]Declaration{first, second})

		inserted := newMembersTestFunction("get")
		members.InsertAfter(first, inserted)

		declarations := members.Declarations()
		require.Len(t, declarations, 3)
		assert.Same(t, first, declarations[0])
		assert.Same(t, inserted, declarations[1])
		assert.Same(t, second, declarations[2])
	})

	t.Run("inserts at the end after the last member", func(t *testing.T) {

		t.Parallel()

		first := newMembersTestVariable("first")
		members := NewMembers([]Declaration{first})

		inserted := newMembersTestFunction("get")
		members.InsertAfter(first, inserted)

		declarations := members.Declarations()
		require.Len(t, declarations, 2)
		assert.Same(t, inserted, declarations[1])
	})

	t.Run("appends when the member is not found", func(t *testing.T) {

		t.Parallel()

		first := newMembersTestVariable("first")
		members := NewMembers([]Declaration{first})

		missing := newMembersTestVariable("missing")
		inserted := newMembersTestFunction("get")
		members.InsertAfter(missing, inserted)

		declarations := members.Declarations()
		require.Len(t, declarations, 2)
		assert.Same(t, first, declarations[0])
		assert.Same(t, inserted, declarations[1])
	})
}

func TestMembersFilters(t *testing.T) {

	t.Parallel()

	variable := newMembersTestVariable("total")
	getter := newMembersTestFunction("get")
	subscriptDeclaration := NewSubscriptDeclaration(
		common.AccessibilityInternal,
		NewImplicitParameterList(
			NewImplicitParameter(
				"",
				"index",
				NewTypeAnnotation(&NominalType{Identifier: Identifier{Identifier: "Int"}}),
			),
		),
		NewTypeAnnotation(&NominalType{Identifier: Identifier{Identifier: "Int"}}),
		nil,
		"",
		Range{},
	)
	initializer := NewInitializerDeclaration(
		common.AccessibilityInternal,
		NewImplicitParameterList(),
		nil,
		Position{},
	)
	destructor := NewDestructorDeclaration(nil, nil, Position{})
	nested := NewCompositeDeclaration(
		common.AccessibilityInternal,
		common.CompositeKindStructure,
		Identifier{Identifier: "Nested"},
		nil,
		nil,
		"",
		Range{},
	)

	members := NewMembers([]Declaration{
		variable,
		getter,
		subscriptDeclaration,
		initializer,
		destructor,
		nested,
	})

	t.Run("per-kind filters", func(t *testing.T) {

		t.Parallel()

		require.Len(t, members.Variables(), 1)
		assert.Same(t, variable, members.Variables()[0])

		require.Len(t, members.Functions(), 1)
		assert.Same(t, getter, members.Functions()[0])

		require.Len(t, members.Subscripts(), 1)
		assert.Same(t, subscriptDeclaration, members.Subscripts()[0])

		require.Len(t, members.Initializers(), 1)
		assert.Same(t, initializer, members.Initializers()[0])

		require.Len(t, members.Destructors(), 1)
		assert.Same(t, destructor, members.Destructors()[0])

		require.Len(t, members.Composites(), 1)
		assert.Same(t, nested, members.Composites()[0])
	})

	t.Run("functions by identifier", func(t *testing.T) {

		t.Parallel()

		functions := members.FunctionsByIdentifier("get")
		require.Len(t, functions, 1)
		assert.Same(t, getter, functions[0])

		assert.Empty(t, members.FunctionsByIdentifier("set"))
	})
}

func TestMembersMemoizationInvalidation(t *testing.T) {

	t.Parallel()

	t.Run("add invalidates", func(t *testing.T) {

		t.Parallel()

		first := newMembersTestVariable("first")
		members := NewMembers([]Declaration{first})

		require.Len(t, members.Variables(), 1)

		second := newMembersTestVariable("second")
		members.Add(second)

		variables := members.Variables()
		require.Len(t, variables, 2)
		assert.Same(t, second, variables[1])
	})

	t.Run("insert invalidates", func(t *testing.T) {

		t.Parallel()

		first := newMembersTestVariable("first")
		last := newMembersTestVariable("last")
		members := NewMembers([]Declaration{first, last})

		require.Len(t, members.Variables(), 2)

		middle := newMembersTestVariable("middle")
		members.InsertAfter(first, middle)

		variables := members.Variables()
		require.Len(t, variables, 3)
		assert.Same(t, first, variables[0])
		assert.Same(t, middle, variables[1])
		assert.Same(t, last, variables[2])
	})
}

func TestMembersWalk(t *testing.T) {

	t.Parallel()

	first := newMembersTestVariable("first")
	second := newMembersTestFunction("get")
	members := NewMembers([]Declaration{first, second})

	var walked []Element
	members.Walk(func(element Element) {
		walked = append(walked, element)
	})

	test_utils.AssertEqualWithDiff(t, []Element{first, second}, walked)
}
