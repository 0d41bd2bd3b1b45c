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

// ConvertForeignManagedStoredVarToComputed turns a property whose
// storage is managed by an external framework into a computed
// property with bodyless accessors: the foreign runtime provides the
// implementations, this type carries no backing field. The accessors
// are registered as externally visible so a later stage emits their
// declarations even without local references.
func (synthesizer *Synthesizer) ConvertForeignManagedStoredVarToComputed(
	variable *ast.VariableDeclaration,
) {
	// the foreign object model owns the storage
	variable.Value = nil

	getter := synthesizer.createGetterPrototype(variable)
	getter.Dynamic = true

	var setter *ast.FunctionDeclaration
	if !variable.IsConstant {
		setter = synthesizer.createSetterPrototype(variable)
		setter.Dynamic = true
	}

	variable.MakeComputed(getter, setter, nil)

	synthesizer.registerAccessors(variable, getter, setter)

	synthesizer.Session.RegisterExternalDeclaration(getter)
	if setter != nil {
		synthesizer.Session.RegisterExternalDeclaration(setter)
	}

	synthesizer.MaybeAddMaterializeForSet(variable)
}
