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

const (
	// CopyProtocolModuleName is the module declaring the copy protocol
	CopyProtocolModuleName = "Foundation"
	// CopyProtocolName is the protocol a copying property's value type
	// must conform to
	CopyProtocolName = "NSCopying"
	// CopyMethodName is the protocol's copy requirement
	CopyMethodName = "copyWithZone"
)

// maybeMarkTransparent marks the accessor inlinable across module
// boundaries. Only valid when the owning type's layout is fixed:
// with a fixed layout the accessor exists purely for uniformity,
// not as an abstraction boundary.
func maybeMarkTransparent(
	accessor *ast.FunctionDeclaration,
	storage ast.StorageDeclaration,
) {
	nominal := ast.ContainingNominalType(storage.StorageContext())
	if nominal == nil || !nominal.FixedLayout {
		return
	}
	accessor.Transparent = true
}

// setSynthesizedBody installs the statements as the accessor's body.
func setSynthesizedBody(accessor *ast.FunctionDeclaration, statements ...ast.Statement) {
	accessor.SetFunctionBlock(
		ast.NewFunctionBlock(ast.NewImplicitBlock(statements...)),
	)
}

// synthesizeTrivialGetterBody fills in `return <storage>`,
// reading the underlying stored value directly.
func (synthesizer *Synthesizer) synthesizeTrivialGetterBody(
	getter *ast.FunctionDeclaration,
	storage ast.StorageDeclaration,
) {
	storageReference := synthesizer.buildStorageReference(
		getter,
		storage,
		ast.AccessSemanticsDirectToStorage,
		SelfAccessKindPeer,
	)
	setSynthesizedBody(getter,
		ast.NewImplicitReturnStatement(storageReference),
	)
	maybeMarkTransparent(getter, storage)
}

// synthesizeTrivialSetterBody fills in `<storage> = value`,
// writing the underlying stored value directly. For copying storage
// the incoming value is passed through the copy protocol first.
func (synthesizer *Synthesizer) synthesizeTrivialSetterBody(
	setter *ast.FunctionDeclaration,
	storage ast.StorageDeclaration,
) {
	valueParameter := setter.ParameterList.Parameters[0]
	var value ast.Expression = ast.NewDeclarationReferenceExpression(
		valueParameter,
		ast.AccessSemanticsOrdinary,
	)

	if variable, ok := storage.(*ast.VariableDeclaration); ok && variable.IsCopying {
		value = synthesizer.synthesizeCopyCall(variable, value)
	}

	storageReference := synthesizer.buildStorageReference(
		setter,
		storage,
		ast.AccessSemanticsDirectToStorage,
		SelfAccessKindPeer,
	)
	setSynthesizedBody(setter,
		ast.NewImplicitAssignmentStatement(storageReference, value),
	)
	maybeMarkTransparent(setter, storage)
}

// lookupCopyProtocol resolves the copy protocol declaration and the
// other protocols in its module, candidates for the suggestion
// diagnostic.
func (synthesizer *Synthesizer) lookupCopyProtocol() (
	copyProtocol *ast.CompositeDeclaration,
	otherProtocols []*ast.CompositeDeclaration,
) {
	lookupModule := synthesizer.Config.LookupModule
	if lookupModule == nil {
		return nil, nil
	}
	module := lookupModule(CopyProtocolModuleName)
	if module == nil {
		return nil, nil
	}

	for _, composite := range module.Members.Composites() {
		if !composite.IsProtocol() {
			continue
		}
		if composite.Identifier.Identifier == CopyProtocolName {
			copyProtocol = composite
		} else {
			otherProtocols = append(otherProtocols, composite)
		}
	}
	return copyProtocol, otherProtocols
}

// synthesizeCopyCall wraps the incoming value of a copying property's
// setter in a copy call:
//
//	non-optional storage: (value.copyWithZone(nil) as! T)
//	optional storage:     (value?.copyWithZone(nil) as? T)
//
// A missing conformance is diagnosed and degrades to the uncopied
// value.
func (synthesizer *Synthesizer) synthesizeCopyCall(
	variable *ast.VariableDeclaration,
	value ast.Expression,
) ast.Expression {

	elementType := variable.TypeAnnotation.Type
	underlyingType, isOptional := ast.UnwrapOptionalType(elementType)

	copyProtocol, otherProtocols := synthesizer.lookupCopyProtocol()
	conformanceService := synthesizer.Config.ConformanceService

	conforms := false
	if conformanceService != nil && copyProtocol != nil {
		conforms = conformanceService.ConformsTo(underlyingType, copyProtocol)
	}
	if !conforms {
		// protocols the type does conform to are suggestion candidates:
		// the declared conformance may be a near-miss of the copy
		// protocol
		var conformingProtocols []string
		if conformanceService != nil {
			for _, protocol := range otherProtocols {
				if conformanceService.ConformsTo(underlyingType, protocol) {
					conformingProtocols = append(
						conformingProtocols,
						protocol.Identifier.Identifier,
					)
				}
			}
		}
		synthesizer.report(&MissingCopyProtocolConformanceError{
			Type:               underlyingType,
			ProtocolName:       CopyProtocolName,
			AvailableProtocols: conformingProtocols,
			Range:              ast.NewRangeFromPositioned(variable),
		})
		return value
	}

	receiver := value
	if isOptional {
		receiver = ast.NewImplicitBindOptionalExpression(receiver)
	}

	copyCall := ast.NewImplicitInvocationExpression(
		ast.NewImplicitMemberExpression(receiver, CopyMethodName),
		ast.Arguments{
			ast.NewUnlabeledArgument(ast.NewImplicitNilExpression()),
		},
	)

	underlyingAnnotation := ast.NewTypeAnnotation(underlyingType)
	if isOptional {
		// the conditional cast yields an optional; the optional
		// evaluation delimits the `value?` binding
		return ast.NewOptionalEvaluationExpression(
			ast.NewImplicitCastingExpression(
				copyCall,
				ast.OperationFailableCast,
				underlyingAnnotation,
			),
		)
	}
	return ast.NewImplicitCastingExpression(
		copyCall,
		ast.OperationForceCast,
		underlyingAnnotation,
	)
}
