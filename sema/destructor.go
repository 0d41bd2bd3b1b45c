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

// AddImplicitDestructor gives a class an empty destructor when it
// declares none. A no-op for invalid classes, non-class types, and
// classes that already have one.
func (synthesizer *Synthesizer) AddImplicitDestructor(
	class *ast.CompositeDeclaration,
) *ast.DestructorDeclaration {
	if !class.IsClass() || class.Invalid || class.HasDestructor() {
		return nil
	}

	destructor := &ast.DestructorDeclaration{
		Identifier: ast.Identifier{Identifier: "deinit"},
		SelfParameter: ast.NewImplicitParameter(
			"",
			"self",
			ast.NewTypeAnnotation(class.DeclaredType()),
		),
		FunctionBlock: ast.NewFunctionBlock(ast.NewImplicitBlock()),
		Implicit:      true,
		Parent:        class,
	}

	class.Members.Add(destructor)
	synthesizer.typeCheck(destructor)
	if class.Foreign {
		synthesizer.Session.RegisterExternalDeclaration(destructor)
	}
	return destructor
}
