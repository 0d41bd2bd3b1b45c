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

// TypeCheckService validates and annotates a declaration's types.
// The first pass checks signatures only, the second checks bodies.
// Both passes must be idempotent on an already validated declaration.
type TypeCheckService interface {
	TypeCheckDeclaration(declaration ast.Declaration, firstPassOnly bool) error
}

// TypeCheckServiceFunc adapts a function to the TypeCheckService interface.
type TypeCheckServiceFunc func(declaration ast.Declaration, firstPassOnly bool) error

var _ TypeCheckService = TypeCheckServiceFunc(nil)

func (f TypeCheckServiceFunc) TypeCheckDeclaration(
	declaration ast.Declaration,
	firstPassOnly bool,
) error {
	if f == nil {
		return nil
	}
	return f(declaration, firstPassOnly)
}

// ConformanceService answers protocol conformance queries.
type ConformanceService interface {
	ConformsTo(ty ast.Type, protocol *ast.CompositeDeclaration) bool
}

// ConformanceServiceFunc adapts a function to the ConformanceService interface.
type ConformanceServiceFunc func(ty ast.Type, protocol *ast.CompositeDeclaration) bool

var _ ConformanceService = ConformanceServiceFunc(nil)

func (f ConformanceServiceFunc) ConformsTo(
	ty ast.Type,
	protocol *ast.CompositeDeclaration,
) bool {
	if f == nil {
		return false
	}
	return f(ty, protocol)
}

// Config carries the external collaborator services of a Synthesizer.
type Config struct {
	// TypeCheckService is consulted after registering each synthesized
	// declaration. nil means no type checking.
	TypeCheckService TypeCheckService

	// ConformanceService answers the copy-protocol conformance query
	// of copying-property setter synthesis. nil means nothing conforms.
	ConformanceService ConformanceService

	// LookupModule resolves an imported module's source file by name,
	// e.g. to find the copy protocol declaration. nil means no imports.
	LookupModule func(name string) *ast.SourceFile

	// UnimplementedInitializerDecl is the runtime trap function called
	// by synthesized stub initializer bodies. nil leaves stub bodies
	// empty and reports MissingUnimplementedInitializerError.
	UnimplementedInitializerDecl *ast.FunctionDeclaration

	// ConvertToBoolean converts an expression of optional type to a
	// boolean test, used in the synthesized lazy getter. The default
	// invokes the optional's hasValue member.
	ConvertToBoolean func(expression ast.Expression) ast.Expression
}

func defaultConvertToBoolean(expression ast.Expression) ast.Expression {
	return ast.NewImplicitInvocationExpression(
		ast.NewImplicitMemberExpression(expression, "hasValue"),
		nil,
	)
}
