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
	"github.com/tienex/swift/ast"
)

// observerOldValueName is the name of the temporary binding the old
// value loaded before the store, passed to didSet.
const observerOldValueName = "tmpOldValue"

// observerSelfAccessKind selects how an observed setter reads and
// writes the underlying value: inherited observed storage has no
// backing store of its own and goes through the superclass.
func observerSelfAccessKind(storage *ast.VariableDeclaration) SelfAccessKind {
	if storage.OverriddenStorage() != nil {
		return SelfAccessKindSuper
	}
	return SelfAccessKindPeer
}

// makeObserverCall builds the statement invoking a willSet or didSet
// observer with the given argument.
func makeObserverCall(
	setter *ast.FunctionDeclaration,
	observer *ast.FunctionDeclaration,
	argument ast.Expression,
) ast.Statement {
	var callee ast.Expression
	if selfParameter := setter.SelfParameter; selfParameter != nil {
		callee = ast.NewMemberReferenceExpression(
			ast.NewDeclarationReferenceExpression(
				selfParameter,
				ast.AccessSemanticsOrdinary,
			),
			observer,
			ast.AccessSemanticsOrdinary,
		)
	} else {
		callee = ast.NewDeclarationReferenceExpression(
			observer,
			ast.AccessSemanticsOrdinary,
		)
	}
	return ast.NewExpressionStatement(
		ast.NewImplicitInvocationExpression(
			callee,
			ast.Arguments{
				ast.NewUnlabeledArgument(argument),
			},
		),
	)
}

// SynthesizeObservingAccessors builds the getter and setter of a
// stored property with willSet/didSet observers. The getter is a
// trivial direct read. The setter loads the old value, runs willSet,
// performs the direct store, and runs didSet, in that order.
func (synthesizer *Synthesizer) SynthesizeObservingAccessors(
	storage *ast.VariableDeclaration,
) {
	selfAccessKind := observerSelfAccessKind(storage)
	inherited := selfAccessKind == SelfAccessKindSuper

	getter := synthesizer.createGetterPrototype(storage)
	getterReference := synthesizer.buildStorageReference(
		getter,
		storage,
		ast.AccessSemanticsDirectToStorage,
		selfAccessKind,
	)
	setSynthesizedBody(getter,
		ast.NewImplicitReturnStatement(getterReference),
	)
	maybeMarkTransparent(getter, storage)

	setter := synthesizer.createSetterPrototype(storage)
	valueParameter := setter.ParameterList.Parameters[0]
	valueReference := func() ast.Expression {
		return ast.NewDeclarationReferenceExpression(
			valueParameter,
			ast.AccessSemanticsOrdinary,
		)
	}

	var statements []ast.Statement

	// load the old value before anything can change it
	var oldValue *ast.VariableDeclaration
	if storage.DidSet != nil {
		oldValue = &ast.VariableDeclaration{
			IsConstant: true,
			Implicit:   true,
			Identifier: ast.Identifier{Identifier: observerOldValueName},
			Value: synthesizer.buildStorageReference(
				setter,
				storage,
				ast.AccessSemanticsDirectToStorage,
				selfAccessKind,
			),
			Parent: setter,
		}
		statements = append(statements, oldValue)
	}

	if storage.WillSet != nil {
		statements = append(
			statements,
			makeObserverCall(setter, storage.WillSet, valueReference()),
		)
	}

	storeReference := synthesizer.buildStorageReference(
		setter,
		storage,
		ast.AccessSemanticsDirectToStorage,
		selfAccessKind,
	)
	statements = append(
		statements,
		ast.NewImplicitAssignmentStatement(storeReference, valueReference()),
	)

	if storage.DidSet != nil {
		statements = append(
			statements,
			makeObserverCall(
				setter,
				storage.DidSet,
				ast.NewDeclarationReferenceExpression(
					oldValue,
					ast.AccessSemanticsOrdinary,
				),
			),
		)
	}

	setSynthesizedBody(setter, statements...)

	// observers are storage synthesis helpers: dynamically dispatching
	// them in a class is unsound
	if ast.IsClassOrClassExtensionContext(storage.StorageContext()) {
		if storage.WillSet != nil {
			storage.WillSet.Final = true
		}
		if storage.DidSet != nil {
			storage.DidSet.Final = true
		}
	}

	storage.MakeObserved(getter, setter, inherited)
}
