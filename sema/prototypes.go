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
	"github.com/tienex/swift/common"
)

// SetterValueParameterName is the name of the synthesized parameter
// carrying the incoming value in setter and observer bodies.
const SetterValueParameterName = "value"

// makeSelfParameter builds the implicit self parameter of an accessor,
// or nil when the storage is not a type member. In value types a
// mutating accessor takes self inout.
func makeSelfParameter(storage ast.StorageDeclaration, mutating bool) *ast.Parameter {
	nominal := ast.ContainingNominalType(storage.StorageContext())
	if nominal == nil {
		return nil
	}

	var selfType ast.Type = nominal.DeclaredType()
	if storage.IsStatic() {
		selfType = &ast.MetatypeType{Type: selfType}
	} else if mutating && nominal.CompositeKind.IsValueKind() {
		selfType = &ast.InOutType{Type: selfType}
	}

	return ast.NewImplicitParameter("", "self", ast.NewTypeAnnotation(selfType))
}

// cloneIndexParameters clones a subscript's index parameters for
// forwarding in an accessor signature. Returns nil for variables.
func cloneIndexParameters(storage ast.StorageDeclaration) []*ast.Parameter {
	indices := storage.IndexParameterList()
	if indices == nil {
		return nil
	}
	return indices.Clone(ast.ParameterCloneImplicit).Parameters
}

// isAccessorDynamic reports whether the synthesized accessor must be
// marked dynamic: foreign-visible dynamic storage dispatches its
// accessors through the foreign runtime.
func isAccessorDynamic(storage ast.StorageDeclaration) bool {
	return storage.IsDynamic() && storage.IsForeignImported()
}

// createGetterPrototype builds the getter's signature, without a body.
func (synthesizer *Synthesizer) createGetterPrototype(
	storage ast.StorageDeclaration,
) *ast.FunctionDeclaration {

	mutating := storage.IsGetterMutating()

	getter := &ast.FunctionDeclaration{
		Access:               storage.DeclarationAccess(),
		AccessorKind:         common.AccessorKindGetter,
		Identifier:           ast.Identifier{Identifier: "get"},
		SelfParameter:        makeSelfParameter(storage, mutating),
		ParameterList:        ast.NewImplicitParameterList(cloneIndexParameters(storage)...),
		ReturnTypeAnnotation: storage.ElementTypeAnnotation(),
		Static:               storage.IsStatic(),
		Final:                storage.IsFinal(),
		Mutating:             mutating,
		Dynamic:              isAccessorDynamic(storage),
		Implicit:             true,
		AccessorStorage:      storage,
		Availability:         storage.StorageAvailability(),
		Parent:               storage.StorageContext(),
	}
	return getter
}

// setterAccess returns the accessibility of a synthesized setter,
// which may be narrower than the storage declaration's own.
func setterAccess(storage ast.StorageDeclaration) common.Accessibility {
	type setterAccessible interface {
		DeclarationSetterAccess() common.Accessibility
	}
	if accessible, ok := storage.(setterAccessible); ok {
		return accessible.DeclarationSetterAccess()
	}
	return storage.DeclarationAccess()
}

// isSetterMutating reports whether the synthesized setter mutates self.
// Class storage never does; value-type storage does unless the
// declaration opts out.
func isSetterMutating(storage ast.StorageDeclaration) bool {
	if storage.IsSetterNonMutating() {
		return false
	}
	context := storage.StorageContext()
	if context == nil {
		return false
	}
	nominal := ast.ContainingNominalType(context)
	return nominal != nil && nominal.CompositeKind.IsValueKind() && !storage.IsStatic()
}

// createSetterPrototype builds the setter's signature, without a body.
// The incoming value is an unlabeled `value` parameter preceding any
// forwarded index parameters.
func (synthesizer *Synthesizer) createSetterPrototype(
	storage ast.StorageDeclaration,
) *ast.FunctionDeclaration {

	mutating := isSetterMutating(storage)

	valueParameter := ast.NewImplicitParameter(
		"",
		SetterValueParameterName,
		storage.ElementTypeAnnotation(),
	)

	parameters := append(
		[]*ast.Parameter{valueParameter},
		cloneIndexParameters(storage)...,
	)

	setter := &ast.FunctionDeclaration{
		Access:               setterAccess(storage),
		AccessorKind:         common.AccessorKindSetter,
		Identifier:           ast.Identifier{Identifier: "set"},
		SelfParameter:        makeSelfParameter(storage, mutating),
		ParameterList:        ast.NewImplicitParameterList(parameters...),
		ReturnTypeAnnotation: ast.NewTypeAnnotation(ast.NewVoidType()),
		Static:               storage.IsStatic(),
		Final:                storage.IsFinal(),
		Mutating:             mutating,
		Dynamic:              isAccessorDynamic(storage),
		Implicit:             true,
		AccessorStorage:      storage,
		Availability:         storage.StorageAvailability(),
		Parent:               storage.StorageContext(),
	}
	return setter
}

// materializeForSetCallbackType is the type of the optional write-back
// callback returned by a materializeForSet accessor:
// (buffer, scratch slot, inout self, self metatype) -> ().
// The callback is thin: it captures nothing.
func materializeForSetCallbackType(storage ast.StorageDeclaration) *ast.FunctionType {
	var selfType ast.Type = ast.NewVoidType()
	if nominal := ast.ContainingNominalType(storage.StorageContext()); nominal != nil {
		selfType = nominal.DeclaredType()
	}
	return &ast.FunctionType{
		ParameterTypes: []ast.Type{
			&ast.RawPointerType{},
			&ast.InOutType{Type: &ast.UnsafeValueBufferType{}},
			&ast.InOutType{Type: selfType},
			&ast.MetatypeType{Type: selfType, Thick: true},
		},
		ReturnType: ast.NewVoidType(),
		Thin:       true,
	}
}

// createMaterializeForSetPrototype builds the materializeForSet
// accessor's signature: it takes an opaque buffer and a scratch slot,
// and returns the address of the value plus an optional write-back
// callback. For foreign-dispatched storage no dispatch-table entry can
// exist, so the accessor is forced to static dispatch.
func (synthesizer *Synthesizer) createMaterializeForSetPrototype(
	storage ast.StorageDeclaration,
) *ast.FunctionDeclaration {

	mutating := isSetterMutating(storage)

	bufferParameter := ast.NewImplicitParameter(
		"",
		"buffer",
		ast.NewTypeAnnotation(&ast.RawPointerType{}),
	)
	callbackStorageParameter := ast.NewImplicitParameter(
		"",
		"callbackStorage",
		ast.NewTypeAnnotation(&ast.InOutType{Type: &ast.UnsafeValueBufferType{}}),
	)

	parameters := append(
		[]*ast.Parameter{bufferParameter, callbackStorageParameter},
		cloneIndexParameters(storage)...,
	)

	returnType := &ast.TupleType{
		Types: []ast.Type{
			&ast.RawPointerType{},
			&ast.OptionalType{Type: materializeForSetCallbackType(storage)},
		},
	}

	materializeForSet := &ast.FunctionDeclaration{
		Access:               setterAccess(storage),
		AccessorKind:         common.AccessorKindMaterializeForSet,
		Identifier:           ast.Identifier{Identifier: "materializeForSet"},
		SelfParameter:        makeSelfParameter(storage, mutating),
		ParameterList:        ast.NewImplicitParameterList(parameters...),
		ReturnTypeAnnotation: ast.NewTypeAnnotation(returnType),
		Static:               storage.IsStatic(),
		Final:                storage.IsFinal(),
		Mutating:             mutating,
		Implicit:             true,
		ForcedStaticDispatch: isAccessorDynamic(storage),
		AccessorStorage:      storage,
		Availability:         accessorAvailability(storage),
		Parent:               storage.StorageContext(),
	}
	return materializeForSet
}
