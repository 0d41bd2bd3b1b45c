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

package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
)

func newTestLazyVariable(
	parent ast.DeclarationContext,
	initializer ast.Expression,
) *ast.VariableDeclaration {
	variable := newTestVariable("total", "Int", false, parent)
	variable.IsLazy = true
	variable.Value = initializer
	return variable
}

func TestSynthesizeLazyAccessors(t *testing.T) {

	t.Parallel()

	t.Run("backing variable", func(t *testing.T) {

		t.Parallel()

		structure := newTestComposite(
			common.CompositeKindStructure,
			"Report",
			newTestSourceFile(),
		)
		initializer := ast.NewImplicitIdentifierExpression("computeTotal")
		variable := newTestLazyVariable(structure, initializer)

		synthesizer := newTestSynthesizer()
		synthesizer.MaybeAddAccessorsToVariable(variable)

		declarations := structure.Members.Declarations()
		require.Len(t, declarations, 5)
		assert.Same(t, variable, declarations[0])
		assert.Same(t, variable.Getter(), declarations[1])
		assert.Same(t, variable.Setter(), declarations[2])
		assert.Same(t, variable.MaterializeForSet(), declarations[3])

		backing, ok := declarations[4].(*ast.VariableDeclaration)
		require.True(t, ok)
		assert.Equal(t, "total.storage", backing.Identifier.Identifier)
		assert.Equal(t, lazyBackingVariableName(variable), backing.Identifier.Identifier)
		assert.True(t, backing.Implicit)
		assert.Equal(t, common.AccessibilityPrivate, backing.Access)
		assert.Equal(t, common.StorageKindStored, backing.StorageKind())

		backingType, ok := backing.TypeAnnotation.Type.(*ast.OptionalType)
		require.True(t, ok)
		assert.Same(t, variable.TypeAnnotation.Type, backingType.Type)

		// the initializer moved out of the property
		assert.Nil(t, variable.Value)
		assert.Equal(t, common.StorageKindComputed, variable.StorageKind())
	})

	t.Run("getter", func(t *testing.T) {

		t.Parallel()

		structure := newTestComposite(
			common.CompositeKindStructure,
			"Report",
			newTestSourceFile(),
		)
		initializer := ast.NewImplicitIdentifierExpression("computeTotal")
		variable := newTestLazyVariable(structure, initializer)

		synthesizer := newTestSynthesizer()
		synthesizer.MaybeAddAccessorsToVariable(variable)

		getter := variable.Getter()
		require.NotNil(t, getter)

		// the getter writes the backing field, so it mutates in a
		// value type
		assert.True(t, variable.IsGetterMutating())
		assert.True(t, getter.Mutating)

		statements := getter.FunctionBlock.Block.Statements
		require.Len(t, statements, 5)

		// let tmp1 = <backing>
		tmp1, ok := statements[0].(*ast.VariableDeclaration)
		require.True(t, ok)
		assert.Equal(t, "tmp1", tmp1.Identifier.Identifier)
		assert.True(t, tmp1.IsConstant)

		// if tmp1 has a value, return tmp1!
		cachedReturn, ok := statements[1].(*ast.IfStatement)
		require.True(t, ok)
		require.Len(t, cachedReturn.Then.Statements, 1)
		returnStatement, ok := cachedReturn.Then.Statements[0].(*ast.ReturnStatement)
		require.True(t, ok)
		assert.IsType(t, &ast.ForceExpression{}, returnStatement.Expression)

		// var tmp2 = <initializer>
		tmp2, ok := statements[2].(*ast.VariableDeclaration)
		require.True(t, ok)
		assert.Equal(t, "tmp2", tmp2.Identifier.Identifier)
		assert.False(t, tmp2.IsConstant)
		assert.Same(t, initializer, tmp2.Value)

		// <backing> = tmp2
		store, ok := statements[3].(*ast.AssignmentStatement)
		require.True(t, ok)
		storeTarget, ok := store.Target.(*ast.MemberReferenceExpression)
		require.True(t, ok)
		assert.Equal(t, ast.AccessSemanticsDirectToStorage, storeTarget.Semantics)

		// return tmp2
		finalReturn, ok := statements[4].(*ast.ReturnStatement)
		require.True(t, ok)
		returned, ok := finalReturn.Expression.(*ast.DeclarationReferenceExpression)
		require.True(t, ok)
		assert.Same(t, tmp2, returned.Declaration)
	})

	t.Run("getter stays non-mutating in classes", func(t *testing.T) {

		t.Parallel()

		class := newTestComposite(
			common.CompositeKindClass,
			"Report",
			newTestSourceFile(),
		)
		variable := newTestLazyVariable(
			class,
			ast.NewImplicitIdentifierExpression("computeTotal"),
		)

		synthesizer := newTestSynthesizer()
		synthesizer.MaybeAddAccessorsToVariable(variable)

		assert.False(t, variable.IsGetterMutating())
		assert.False(t, variable.Getter().Mutating)

		// class accessors and the backing field are non-polymorphic
		assert.True(t, variable.Getter().Final)
		assert.True(t, variable.Setter().Final)

		declarations := class.Members.Declarations()
		backing, ok := declarations[len(declarations)-1].(*ast.VariableDeclaration)
		require.True(t, ok)
		assert.True(t, backing.Final)
	})

	t.Run("setter stores to the backing field", func(t *testing.T) {

		t.Parallel()

		structure := newTestComposite(
			common.CompositeKindStructure,
			"Report",
			newTestSourceFile(),
		)
		variable := newTestLazyVariable(
			structure,
			ast.NewImplicitIdentifierExpression("computeTotal"),
		)

		synthesizer := newTestSynthesizer()
		synthesizer.MaybeAddAccessorsToVariable(variable)

		setter := variable.Setter()
		require.NotNil(t, setter)

		statements := setter.FunctionBlock.Block.Statements
		require.Len(t, statements, 1)
		store, ok := statements[0].(*ast.AssignmentStatement)
		require.True(t, ok)

		target, ok := store.Target.(*ast.MemberReferenceExpression)
		require.True(t, ok)
		targetVariable, ok := target.Declaration.(*ast.VariableDeclaration)
		require.True(t, ok)
		assert.Equal(t, lazyBackingVariableName(variable), targetVariable.Identifier.Identifier)

		value, ok := store.Value.(*ast.DeclarationReferenceExpression)
		require.True(t, ok)
		assert.Same(t, setter.ParameterList.Parameters[0], value.Declaration)
	})

	t.Run("closures in the initializer are reparented", func(t *testing.T) {

		t.Parallel()

		structure := newTestComposite(
			common.CompositeKindStructure,
			"Report",
			newTestSourceFile(),
		)
		nested := &ast.FunctionExpression{
			ParameterList:        ast.NewImplicitParameterList(),
			ReturnTypeAnnotation: ast.NewTypeAnnotation(newTestType("Int")),
			FunctionBlock: &ast.FunctionBlock{
				Block: ast.NewImplicitBlock(),
			},
			Implicit: true,
		}
		closure := &ast.FunctionExpression{
			ParameterList:        ast.NewImplicitParameterList(),
			ReturnTypeAnnotation: ast.NewTypeAnnotation(newTestType("Int")),
			FunctionBlock: &ast.FunctionBlock{
				Block: ast.NewImplicitBlock(
					ast.NewExpressionStatement(nested),
				),
			},
			Implicit: true,
			Parent:   structure,
		}
		nested.Parent = closure
		initializer := ast.NewImplicitInvocationExpression(closure, nil)
		variable := newTestLazyVariable(structure, initializer)

		synthesizer := newTestSynthesizer()
		synthesizer.MaybeAddAccessorsToVariable(variable)

		// the outer closure now belongs to the getter; the nested one
		// keeps its chain through the reparented parent
		assert.Same(t, variable.Getter(), closure.Parent)
		assert.Same(t, closure, nested.Parent)
	})
}
