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
	"github.com/tienex/swift/errors"
)

// SelfAccessKind selects how a synthesized body refers to its storage.
type SelfAccessKind uint8

const (
	// SelfAccessKindPeer accesses the declaration itself,
	// directly and non-polymorphically.
	SelfAccessKindPeer SelfAccessKind = iota
	// SelfAccessKindSuper redirects the access to the overridden
	// declaration in the superclass, with ordinary polymorphic
	// semantics. Falls back to Peer when nothing is overridden.
	SelfAccessKindSuper
)

func (k SelfAccessKind) Name() string {
	switch k {
	case SelfAccessKindPeer:
		return "peer"
	case SelfAccessKindSuper:
		return "super"
	}

	panic(errors.NewUnreachableError())
}

// forwardedIndexReference builds the expression forwarding a
// subscript accessor's index parameters, a tuple when there are
// several. The index parameters are always the trailing parameters
// of the accessor signature.
func forwardedIndexReference(
	accessor *ast.FunctionDeclaration,
	indices *ast.ParameterList,
) ast.Expression {
	parameters := accessor.ParameterList.Parameters
	indexParameters := parameters[len(parameters)-len(indices.Parameters):]

	references := make([]ast.Expression, len(indexParameters))
	for i, parameter := range indexParameters {
		references[i] = ast.NewDeclarationReferenceExpression(
			parameter,
			ast.AccessSemanticsOrdinary,
		)
	}

	if len(references) == 1 {
		return references[0]
	}
	return ast.NewImplicitTupleExpression(references...)
}

// buildStorageReference builds the expression a synthesized accessor
// body uses to read or write its storage.
func (synthesizer *Synthesizer) buildStorageReference(
	accessor *ast.FunctionDeclaration,
	storage ast.StorageDeclaration,
	semantics ast.AccessSemantics,
	selfAccessKind SelfAccessKind,
) ast.Expression {

	target := storage
	var base ast.Expression

	switch selfAccessKind {
	case SelfAccessKindSuper:
		overridden := storage.OverriddenStorage()
		if overridden != nil {
			target = overridden
			// the superclass declaration is accessed with ordinary
			// semantics: the store must dispatch through it
			semantics = ast.AccessSemanticsOrdinary
			base = ast.NewImplicitSuperExpression()
			break
		}
		fallthrough
	case SelfAccessKindPeer:
		if selfParameter := accessor.SelfParameter; selfParameter != nil {
			base = ast.NewDeclarationReferenceExpression(
				selfParameter,
				ast.AccessSemanticsOrdinary,
			)
		}
	default:
		panic(errors.NewUnreachableError())
	}

	if base == nil {
		// non-member storage: a file-scope variable or local
		return ast.NewDeclarationReferenceExpression(target, semantics)
	}

	if indices := target.IndexParameterList(); indices != nil {
		subscript, ok := target.(*ast.SubscriptDeclaration)
		if !ok {
			panic(errors.NewUnreachableError())
		}
		return ast.NewIndexReferenceExpression(
			base,
			subscript,
			forwardedIndexReference(accessor, indices),
			semantics,
		)
	}

	return ast.NewMemberReferenceExpression(base, target, semantics)
}
