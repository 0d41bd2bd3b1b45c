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
	"github.com/tienex/swift/errors"
)

// ImplicitConstructorKind selects which implicit initializer to build.
type ImplicitConstructorKind uint8

const (
	// ImplicitConstructorKindDefault is the zero-argument initializer.
	ImplicitConstructorKindDefault ImplicitConstructorKind = iota
	// ImplicitConstructorKindMemberwise takes one parameter per
	// eligible stored property. Value types only.
	ImplicitConstructorKindMemberwise
)

// DesignatedInitializerKind selects the body of a synthesized
// designated-initializer override.
type DesignatedInitializerKind uint8

const (
	// DesignatedInitializerKindChaining forwards to the superclass
	// initializer.
	DesignatedInitializerKindChaining DesignatedInitializerKind = iota
	// DesignatedInitializerKindStub traps at runtime.
	DesignatedInitializerKindStub
)

// memberwiseParameter builds the initializer parameter for a stored
// property. A lazy property's parameter is optional: the backing
// storage is itself optional and may not be fully type-checked yet.
func memberwiseParameter(variable *ast.VariableDeclaration) *ast.Parameter {
	parameterType := variable.TypeAnnotation.Type
	if variable.IsLazy {
		parameterType = &ast.OptionalType{Type: parameterType}
	}
	name := variable.Identifier.Identifier
	return ast.NewImplicitParameter(name, name, ast.NewTypeAnnotation(parameterType))
}

// isMemberwiseInitializedProperty reports whether a stored property
// becomes a memberwise initializer parameter. Immutable properties
// with their own initializer are already bound; implicit properties,
// including synthesized backing fields, are never exposed.
func isMemberwiseInitializedProperty(variable *ast.VariableDeclaration) bool {
	if variable.Implicit || variable.IsStatic() {
		return false
	}
	if !variable.StorageKind().HasStorage() && !variable.IsLazy {
		return false
	}
	if variable.IsConstant && variable.Value != nil {
		return false
	}
	return true
}

// CreateImplicitConstructor builds the implicit initializer of a
// nominal type: memberwise for structs, or the zero-argument default.
// The body is left for the lowering stage; only the signature matters
// to the type checker. The default initializer of a class with a
// superclass overrides the superclass's default initializer.
func (synthesizer *Synthesizer) CreateImplicitConstructor(
	nominal *ast.CompositeDeclaration,
	kind ImplicitConstructorKind,
) *ast.InitializerDeclaration {

	access := common.MinAccessibility(
		nominal.Access,
		common.AccessibilityInternal,
	)

	var parameters []*ast.Parameter
	switch kind {
	case ImplicitConstructorKindMemberwise:
		if !nominal.CompositeKind.IsValueKind() {
			synthesizer.report(&InvalidSynthesisTargetError{
				ExpectedKind: common.DeclarationKindStructure,
				ActualKind:   nominal.DeclarationKind(),
				Range:        ast.NewRangeFromPositioned(nominal),
			})
			return nil
		}
		for _, variable := range nominal.Members.Variables() {
			if !isMemberwiseInitializedProperty(variable) {
				continue
			}
			parameters = append(parameters, memberwiseParameter(variable))
			access = common.MinAccessibility(access, variable.Access)
		}

	case ImplicitConstructorKindDefault:
		break

	default:
		panic(errors.NewUnreachableError())
	}

	constructor := &ast.InitializerDeclaration{
		Access:        access,
		Identifier:    ast.Identifier{Identifier: "init"},
		ParameterList: ast.NewImplicitParameterList(parameters...),
		Memberwise:    true,
		Implicit:      true,
		Parent:        nominal,
	}
	constructor.SelfParameter = ast.NewImplicitParameter(
		"",
		"self",
		ast.NewTypeAnnotation(nominal.DeclaredType()),
	)

	if kind == ImplicitConstructorKindDefault && nominal.HasSuperclass() {
		constructor.Override = true
		constructor.OverriddenInitializer = findDefaultInitializer(nominal.Superclass)
	}

	return constructor
}

// findDefaultInitializer returns the zero-argument initializer of the
// class, walking up the superclass chain.
func findDefaultInitializer(class *ast.CompositeDeclaration) *ast.InitializerDeclaration {
	for class != nil {
		for _, initializer := range class.Members.Initializers() {
			if initializer.ParameterList.IsEmpty() {
				return initializer
			}
		}
		class = class.Superclass
	}
	return nil
}

// AddImplicitConstructor builds the implicit initializer, registers
// it as a member of the type, and type-checks it.
func (synthesizer *Synthesizer) AddImplicitConstructor(
	nominal *ast.CompositeDeclaration,
	kind ImplicitConstructorKind,
) *ast.InitializerDeclaration {
	constructor := synthesizer.CreateImplicitConstructor(nominal, kind)
	if constructor == nil {
		return nil
	}
	nominal.Members.Add(constructor)
	synthesizer.typeCheck(constructor)
	if nominal.Foreign {
		synthesizer.Session.RegisterExternalDeclaration(constructor)
	}
	return constructor
}

// forwardedArguments builds the argument list forwarding every
// parameter of the override to the superclass initializer,
// positionally, preserving labels.
func forwardedArguments(parameterList *ast.ParameterList) ast.Arguments {
	arguments := make(ast.Arguments, 0, len(parameterList.Parameters))
	for _, parameter := range parameterList.Parameters {
		var reference ast.Expression = ast.NewDeclarationReferenceExpression(
			parameter,
			ast.AccessSemanticsOrdinary,
		)
		if parameter.IsInOut() {
			reference = ast.NewImplicitInOutExpression(reference)
		}
		arguments = append(arguments, ast.NewArgument(parameter.Label, reference))
	}
	return arguments
}

// synthesizeChainingBody fills in `super.init(args...)`, wrapped in
// `try` when the superclass initializer throws.
func synthesizeChainingBody(
	override *ast.InitializerDeclaration,
	superclassInitializer *ast.InitializerDeclaration,
) {
	var call ast.Expression = ast.NewImplicitInvocationExpression(
		ast.NewImplicitMemberExpression(
			ast.NewImplicitSuperExpression(),
			"init",
		),
		forwardedArguments(override.ParameterList),
	)
	if superclassInitializer.Throws {
		call = ast.NewImplicitTryExpression(call)
	}
	override.SetFunctionBlock(
		ast.NewFunctionBlock(ast.NewImplicitBlock(
			ast.NewExpressionStatement(call),
		)),
	)
}

// synthesizeStubBody fills in a call to the unimplemented-initializer
// runtime trap, passing the fully qualified class name. A missing trap
// declaration is diagnosed and leaves the body empty.
func (synthesizer *Synthesizer) synthesizeStubBody(
	override *ast.InitializerDeclaration,
	class *ast.CompositeDeclaration,
) {
	override.Stub = true

	trap := synthesizer.Config.UnimplementedInitializerDecl
	if trap == nil {
		synthesizer.report(&MissingUnimplementedInitializerError{
			ClassName: class.QualifiedIdentifier(),
			Range:     ast.NewRangeFromPositioned(class),
		})
		return
	}

	call := ast.NewImplicitInvocationExpression(
		ast.NewDeclarationReferenceExpression(trap, ast.AccessSemanticsOrdinary),
		ast.Arguments{
			ast.NewUnlabeledArgument(
				ast.NewImplicitStringExpression(class.QualifiedIdentifier()),
			),
		},
	)
	override.SetFunctionBlock(
		ast.NewFunctionBlock(ast.NewImplicitBlock(
			ast.NewExpressionStatement(call),
		)),
	)
}

// CreateDesignatedInitializerOverride builds a subclass override of a
// superclass designated initializer, with a cloned parameter list and
// matching failability. Returns nil when the superclass initializer or
// the class is generic: chaining through uninferred generic parameters
// is not supported.
//
// The chaining kind forwards to the superclass initializer; forwarding
// a variadic parameter is diagnosed and degrades to a stub. The stub
// kind traps at runtime.
func (synthesizer *Synthesizer) CreateDesignatedInitializerOverride(
	class *ast.CompositeDeclaration,
	superclassInitializer *ast.InitializerDeclaration,
	kind DesignatedInitializerKind,
) *ast.InitializerDeclaration {

	if class.Generic || superclassInitializer.Generic {
		return nil
	}

	parameterList := superclassInitializer.ParameterList.Clone(
		ast.ParameterCloneImplicit | ast.ParameterCloneInherited,
	)

	override := &ast.InitializerDeclaration{
		Access: common.MinAccessibility(
			class.Access,
			superclassInitializer.Access,
		),
		Identifier:            ast.Identifier{Identifier: "init"},
		ParameterList:         parameterList,
		Failability:           superclassInitializer.Failability,
		Throws:                superclassInitializer.Throws,
		Required:              superclassInitializer.Required,
		Override:              true,
		Implicit:              true,
		Foreign:               superclassInitializer.Foreign,
		ForeignName:           superclassInitializer.ForeignName,
		OverriddenInitializer: superclassInitializer,
		Availability:          InferAvailability(superclassInitializer.Availability),
		Parent:                class,
	}
	override.SelfParameter = ast.NewImplicitParameter(
		"",
		"self",
		ast.NewTypeAnnotation(class.DeclaredType()),
	)

	if kind == DesignatedInitializerKindChaining &&
		parameterList.HasVariadicParameter() {
		synthesizer.report(&UnsupportedVariadicForwardingError{
			SuperclassInitializer: superclassInitializer,
			Range:                 ast.NewRangeFromPositioned(class),
		})
		kind = DesignatedInitializerKindStub
	}

	switch kind {
	case DesignatedInitializerKindChaining:
		synthesizeChainingBody(override, superclassInitializer)
	case DesignatedInitializerKindStub:
		synthesizer.synthesizeStubBody(override, class)
	default:
		panic(errors.NewUnreachableError())
	}

	return override
}

// AddDesignatedInitializerOverride builds the override, registers it
// as a member of the class, and type-checks it.
func (synthesizer *Synthesizer) AddDesignatedInitializerOverride(
	class *ast.CompositeDeclaration,
	superclassInitializer *ast.InitializerDeclaration,
	kind DesignatedInitializerKind,
) *ast.InitializerDeclaration {
	override := synthesizer.CreateDesignatedInitializerOverride(
		class,
		superclassInitializer,
		kind,
	)
	if override == nil {
		return nil
	}
	class.Members.Add(override)
	synthesizer.typeCheck(override)
	if class.Foreign {
		synthesizer.Session.RegisterExternalDeclaration(override)
	}
	return override
}
