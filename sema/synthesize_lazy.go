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
	"fmt"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
)

// lazyStorageSuffix is appended to the property name to form the
// auxiliary backing field's name. The dot makes the field unnameable
// from source.
const lazyStorageSuffix = ".storage"

const lazyGetterDocString = "First access evaluates the initializer and caches the result. " +
	"Not safe for concurrent first access: concurrent first callers may each evaluate " +
	"the initializer, and the last store wins."

// recontextualizeClosures relocates the closures of an initializer
// expression into the getter the expression was moved into. The walk
// stops at each closure: nested closures keep their parent chain
// through the reparented one.
func recontextualizeClosures(expression ast.Expression, context ast.DeclarationContext) {
	var walk func(element ast.Element)
	walk = func(element ast.Element) {
		if functionExpression, ok := element.(*ast.FunctionExpression); ok {
			functionExpression.Parent = context
			return
		}
		element.Walk(walk)
	}
	expression.Walk(walk)
}

// createLazyBackingVariable builds the auxiliary optional-typed stored
// field holding a lazy property's value once initialized.
// The field is private, implicit, and final in classes.
func createLazyBackingVariable(variable *ast.VariableDeclaration) *ast.VariableDeclaration {
	backing := &ast.VariableDeclaration{
		AbstractStorage: ast.AbstractStorage{
			Kind:   common.StorageKindStored,
			Static: variable.IsStatic(),
		},
		Access:   common.AccessibilityPrivate,
		Implicit: true,
		Identifier: ast.Identifier{
			Identifier: variable.Identifier.Identifier + lazyStorageSuffix,
		},
		TypeAnnotation: ast.NewTypeAnnotation(
			&ast.OptionalType{Type: variable.TypeAnnotation.Type},
		),
		Parent: variable.Parent,
	}
	if ast.IsClassOrClassExtensionContext(variable.Parent) {
		backing.Final = true
	}
	return backing
}

// SynthesizeLazyAccessors turns a lazy stored property into a computed
// property backed by an auxiliary optional field. The initializer
// expression moves out of the property and into the getter, which
// evaluates it on first access.
func (synthesizer *Synthesizer) SynthesizeLazyAccessors(
	variable *ast.VariableDeclaration,
) {
	backing := createLazyBackingVariable(variable)
	addMemberToContext(variable.Parent, variable, backing)

	initializer := variable.Value
	variable.Value = nil

	// the getter writes the backing field on first access
	if nominal := ast.ContainingNominalType(variable.Parent); nominal != nil &&
		nominal.CompositeKind.IsValueKind() {
		variable.GetterMutating = true
	}

	getter := synthesizer.createGetterPrototype(variable)
	getter.DocString = lazyGetterDocString
	if ast.IsClassOrClassExtensionContext(variable.Parent) {
		getter.Final = true
	}

	if initializer != nil {
		recontextualizeClosures(initializer, getter)
	}

	backingReference := func() ast.Expression {
		return synthesizer.buildStorageReference(
			getter,
			backing,
			ast.AccessSemanticsDirectToStorage,
			SelfAccessKindPeer,
		)
	}

	// let tmp1 = <backing>
	tmp1 := &ast.VariableDeclaration{
		IsConstant: true,
		Implicit:   true,
		Identifier: ast.Identifier{Identifier: "tmp1"},
		Value:      backingReference(),
		Parent:     getter,
	}
	tmp1Reference := func() ast.Expression {
		return ast.NewDeclarationReferenceExpression(
			tmp1,
			ast.AccessSemanticsOrdinary,
		)
	}

	// if tmp1 has a value, return it unwrapped
	cachedReturn := ast.NewImplicitIfStatement(
		synthesizer.convertToBoolean(tmp1Reference()),
		ast.NewImplicitBlock(
			ast.NewImplicitReturnStatement(
				ast.NewImplicitForceExpression(tmp1Reference()),
			),
		),
		nil,
	)

	// var tmp2 = <initializer>
	tmp2 := &ast.VariableDeclaration{
		Implicit:   true,
		Identifier: ast.Identifier{Identifier: "tmp2"},
		Value:      initializer,
		Parent:     getter,
	}
	tmp2Reference := func() ast.Expression {
		return ast.NewDeclarationReferenceExpression(
			tmp2,
			ast.AccessSemanticsOrdinary,
		)
	}

	setSynthesizedBody(getter,
		tmp1,
		cachedReturn,
		tmp2,
		ast.NewImplicitAssignmentStatement(backingReference(), tmp2Reference()),
		ast.NewImplicitReturnStatement(tmp2Reference()),
	)

	// the setter is a trivial store to the backing field
	setter := synthesizer.createSetterPrototype(variable)
	if ast.IsClassOrClassExtensionContext(variable.Parent) {
		setter.Final = true
	}
	valueReference := ast.NewDeclarationReferenceExpression(
		setter.ParameterList.Parameters[0],
		ast.AccessSemanticsOrdinary,
	)
	setterBackingReference := synthesizer.buildStorageReference(
		setter,
		backing,
		ast.AccessSemanticsDirectToStorage,
		SelfAccessKindPeer,
	)
	setSynthesizedBody(setter,
		ast.NewImplicitAssignmentStatement(setterBackingReference, valueReference),
	)

	variable.MakeComputed(getter, setter, nil)
}

// lazyBackingVariableName returns the auxiliary field name of a lazy
// property, e.g. "x.storage" for property "x".
func lazyBackingVariableName(variable *ast.VariableDeclaration) string {
	return fmt.Sprintf("%s%s", variable.Identifier.Identifier, lazyStorageSuffix)
}
