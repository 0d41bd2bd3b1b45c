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

func newTestSuperclassInitializer(
	class *ast.CompositeDeclaration,
	parameters ...*ast.Parameter,
) *ast.InitializerDeclaration {
	initializer := &ast.InitializerDeclaration{
		Access:        common.AccessibilityInternal,
		Identifier:    ast.Identifier{Identifier: "init"},
		ParameterList: ast.NewImplicitParameterList(parameters...),
		Parent:        class,
	}
	class.Members.Add(initializer)
	return initializer
}

func TestCreateMemberwiseConstructor(t *testing.T) {

	t.Parallel()

	t.Run("parameter selection", func(t *testing.T) {

		t.Parallel()

		structure := newTestComposite(
			common.CompositeKindStructure,
			"Point",
			newTestSourceFile(),
		)

		included := newTestVariable("a", "Int", false, structure)

		// a let with its own initializer is already bound
		boundConstant := newTestVariable("b", "Int", true, structure)
		boundConstant.Value = ast.NewImplicitIdentifierExpression("zero")

		lazy := newTestVariable("c", "Double", false, structure)
		lazy.IsLazy = true

		static := newTestVariable("d", "Int", false, structure)
		static.Static = true

		implicit := newTestVariable("e", "Int", false, structure)
		implicit.Implicit = true

		synthesizer := newTestSynthesizer()
		constructor := synthesizer.AddImplicitConstructor(
			structure,
			ImplicitConstructorKindMemberwise,
		)

		assert.True(t, constructor.Implicit)
		assert.True(t, constructor.Memberwise)
		require.NotNil(t, constructor.SelfParameter)

		parameters := constructor.ParameterList.Parameters
		require.Len(t, parameters, 2)

		assert.Equal(t, "a", parameters[0].Identifier.Identifier)
		assert.Equal(t, "a", parameters[0].ArgumentLabel())
		assert.Same(t, included.TypeAnnotation.Type, parameters[0].TypeAnnotation.Type)

		// the lazy property's parameter is optional
		assert.Equal(t, "c", parameters[1].Identifier.Identifier)
		optional, ok := parameters[1].TypeAnnotation.Type.(*ast.OptionalType)
		require.True(t, ok)
		assert.Same(t, lazy.TypeAnnotation.Type, optional.Type)

		// registered as the last member
		declarations := structure.Members.Declarations()
		assert.Same(t, constructor, declarations[len(declarations)-1])
	})

	t.Run("access is the minimum over the properties", func(t *testing.T) {

		t.Parallel()

		structure := newTestComposite(
			common.CompositeKindStructure,
			"Point",
			newTestSourceFile(),
		)
		hidden := newTestVariable("a", "Int", false, structure)
		hidden.Access = common.AccessibilityPrivate

		synthesizer := newTestSynthesizer()
		constructor := synthesizer.CreateImplicitConstructor(
			structure,
			ImplicitConstructorKindMemberwise,
		)

		assert.Equal(t, common.AccessibilityPrivate, constructor.Access)
	})

	t.Run("public type gets an internal constructor", func(t *testing.T) {

		t.Parallel()

		structure := newTestComposite(
			common.CompositeKindStructure,
			"Point",
			newTestSourceFile(),
		)
		structure.Access = common.AccessibilityPublic
		newTestVariable("a", "Int", false, structure)

		synthesizer := newTestSynthesizer()
		constructor := synthesizer.CreateImplicitConstructor(
			structure,
			ImplicitConstructorKindMemberwise,
		)

		assert.Equal(t, common.AccessibilityInternal, constructor.Access)
	})

	t.Run("memberwise requires a value type", func(t *testing.T) {

		t.Parallel()

		class := newTestComposite(
			common.CompositeKindClass,
			"View",
			newTestSourceFile(),
		)

		synthesizer := newTestSynthesizer()
		constructor := synthesizer.AddImplicitConstructor(
			class,
			ImplicitConstructorKindMemberwise,
		)

		assert.Nil(t, constructor)
		assert.Empty(t, class.Members.Initializers())

		errs := synthesizer.Session.Errors()
		require.Len(t, errs, 1)
		var targetErr *InvalidSynthesisTargetError
		require.ErrorAs(t, errs[0], &targetErr)
		assert.Equal(t, common.DeclarationKindStructure, targetErr.ExpectedKind)
		assert.Equal(t, common.DeclarationKindClass, targetErr.ActualKind)
	})
}

func TestCreateDefaultConstructor(t *testing.T) {

	t.Parallel()

	t.Run("class", func(t *testing.T) {

		t.Parallel()

		class := newTestComposite(
			common.CompositeKindClass,
			"View",
			newTestSourceFile(),
		)
		newTestVariable("frame", "Rect", false, class)

		synthesizer := newTestSynthesizer()
		constructor := synthesizer.AddImplicitConstructor(
			class,
			ImplicitConstructorKindDefault,
		)

		assert.True(t, constructor.ParameterList.IsEmpty())
		assert.False(t, constructor.Override)
		assert.Nil(t, constructor.OverriddenInitializer)
	})

	t.Run("subclass default overrides the superclass default", func(t *testing.T) {

		t.Parallel()

		sourceFile := newTestSourceFile()
		base := newTestComposite(common.CompositeKindClass, "Base", sourceFile)
		baseDefault := newTestSuperclassInitializer(base)

		sub := newTestComposite(common.CompositeKindClass, "Sub", sourceFile)
		sub.Superclass = base

		synthesizer := newTestSynthesizer()
		constructor := synthesizer.AddImplicitConstructor(
			sub,
			ImplicitConstructorKindDefault,
		)

		assert.True(t, constructor.Override)
		assert.Same(t, baseDefault, constructor.OverriddenInitializer)
	})

	t.Run("grandparent default is found", func(t *testing.T) {

		t.Parallel()

		sourceFile := newTestSourceFile()
		base := newTestComposite(common.CompositeKindClass, "Base", sourceFile)
		baseDefault := newTestSuperclassInitializer(base)

		middle := newTestComposite(common.CompositeKindClass, "Middle", sourceFile)
		middle.Superclass = base

		sub := newTestComposite(common.CompositeKindClass, "Sub", sourceFile)
		sub.Superclass = middle

		synthesizer := newTestSynthesizer()
		constructor := synthesizer.CreateImplicitConstructor(
			sub,
			ImplicitConstructorKindDefault,
		)

		assert.Same(t, baseDefault, constructor.OverriddenInitializer)
	})

	t.Run("foreign type constructor is registered externally", func(t *testing.T) {

		t.Parallel()

		class := newTestComposite(
			common.CompositeKindClass,
			"Legacy",
			newTestSourceFile(),
		)
		class.Foreign = true

		synthesizer := newTestSynthesizer()
		constructor := synthesizer.AddImplicitConstructor(
			class,
			ImplicitConstructorKindDefault,
		)

		externals := synthesizer.Session.ExternalDeclarations()
		require.Len(t, externals, 1)
		assert.Same(t, constructor, externals[0])
	})
}

func TestCreateDesignatedInitializerOverride(t *testing.T) {

	t.Parallel()

	newClassPair := func() (base, sub *ast.CompositeDeclaration) {
		sourceFile := newTestSourceFile()
		base = newTestComposite(common.CompositeKindClass, "Base", sourceFile)
		sub = newTestComposite(common.CompositeKindClass, "Sub", sourceFile)
		sub.Superclass = base
		return base, sub
	}

	t.Run("chaining", func(t *testing.T) {

		t.Parallel()

		base, sub := newClassPair()
		superclassInitializer := newTestSuperclassInitializer(
			base,
			ast.NewImplicitParameter(
				"with",
				"frame",
				ast.NewTypeAnnotation(newTestType("Rect")),
			),
		)

		synthesizer := newTestSynthesizer()
		override := synthesizer.AddDesignatedInitializerOverride(
			sub,
			superclassInitializer,
			DesignatedInitializerKindChaining,
		)

		require.NotNil(t, override)
		assert.True(t, override.Implicit)
		assert.True(t, override.Override)
		assert.False(t, override.Stub)
		assert.Same(t, superclassInitializer, override.OverriddenInitializer)

		// the parameter list is a fresh clone
		require.Len(t, override.ParameterList.Parameters, 1)
		parameter := override.ParameterList.Parameters[0]
		assert.NotSame(t, superclassInitializer.ParameterList.Parameters[0], parameter)
		assert.Equal(t, "with", parameter.Label)
		assert.True(t, parameter.Implicit)
		assert.True(t, parameter.Inherited)

		// super.init(with: frame)
		statements := override.FunctionBlock.Block.Statements
		require.Len(t, statements, 1)
		call, ok := statements[0].(*ast.ExpressionStatement)
		require.True(t, ok)
		invocation, ok := call.Expression.(*ast.InvocationExpression)
		require.True(t, ok)
		member, ok := invocation.InvokedExpression.(*ast.MemberExpression)
		require.True(t, ok)
		assert.IsType(t, &ast.SuperExpression{}, member.Expression)
		assert.Equal(t, "init", member.Identifier.Identifier)

		require.Len(t, invocation.Arguments, 1)
		assert.Equal(t, "with", invocation.Arguments[0].Label)
		forwarded, ok := invocation.Arguments[0].Expression.(*ast.DeclarationReferenceExpression)
		require.True(t, ok)
		assert.Same(t, parameter, forwarded.Declaration)

		assert.Empty(t, synthesizer.Session.Errors())
	})

	t.Run("throwing superclass initializer is chained with try", func(t *testing.T) {

		t.Parallel()

		base, sub := newClassPair()
		superclassInitializer := newTestSuperclassInitializer(base)
		superclassInitializer.Throws = true

		synthesizer := newTestSynthesizer()
		override := synthesizer.CreateDesignatedInitializerOverride(
			sub,
			superclassInitializer,
			DesignatedInitializerKindChaining,
		)

		require.NotNil(t, override)
		assert.True(t, override.Throws)

		statements := override.FunctionBlock.Block.Statements
		require.Len(t, statements, 1)
		call, ok := statements[0].(*ast.ExpressionStatement)
		require.True(t, ok)
		assert.IsType(t, &ast.TryExpression{}, call.Expression)
	})

	t.Run("failability and requiredness propagate", func(t *testing.T) {

		t.Parallel()

		base, sub := newClassPair()
		superclassInitializer := newTestSuperclassInitializer(base)
		superclassInitializer.Failability = ast.FailabilityFailable
		superclassInitializer.Required = true

		synthesizer := newTestSynthesizer()
		override := synthesizer.CreateDesignatedInitializerOverride(
			sub,
			superclassInitializer,
			DesignatedInitializerKindChaining,
		)

		require.NotNil(t, override)
		assert.Equal(t, ast.FailabilityFailable, override.Failability)
		assert.True(t, override.Required)
	})

	t.Run("generic class gets no override", func(t *testing.T) {

		t.Parallel()

		base, sub := newClassPair()
		sub.Generic = true
		superclassInitializer := newTestSuperclassInitializer(base)

		synthesizer := newTestSynthesizer()
		override := synthesizer.AddDesignatedInitializerOverride(
			sub,
			superclassInitializer,
			DesignatedInitializerKindChaining,
		)

		assert.Nil(t, override)
	})

	t.Run("generic superclass initializer gets no override", func(t *testing.T) {

		t.Parallel()

		base, sub := newClassPair()
		superclassInitializer := newTestSuperclassInitializer(base)
		superclassInitializer.Generic = true

		synthesizer := newTestSynthesizer()
		override := synthesizer.CreateDesignatedInitializerOverride(
			sub,
			superclassInitializer,
			DesignatedInitializerKindChaining,
		)

		assert.Nil(t, override)
	})

	t.Run("variadic forwarding degrades to a stub", func(t *testing.T) {

		t.Parallel()

		base, sub := newClassPair()
		variadic := ast.NewImplicitParameter(
			"",
			"items",
			ast.NewTypeAnnotation(newTestType("Int")),
		)
		variadic.Variadic = true
		superclassInitializer := newTestSuperclassInitializer(base, variadic)

		trap := &ast.FunctionDeclaration{
			Identifier: ast.Identifier{Identifier: "_unimplementedInitializer"},
		}
		synthesizer := NewSynthesizer(
			&Config{UnimplementedInitializerDecl: trap},
			NewSession(),
		)
		override := synthesizer.CreateDesignatedInitializerOverride(
			sub,
			superclassInitializer,
			DesignatedInitializerKindChaining,
		)

		require.NotNil(t, override)
		assert.True(t, override.Stub)

		errs := synthesizer.Session.Errors()
		require.Len(t, errs, 1)
		var forwardingErr *UnsupportedVariadicForwardingError
		require.ErrorAs(t, errs[0], &forwardingErr)
		assert.Same(t, superclassInitializer, forwardingErr.SuperclassInitializer)

		// the stub calls the trap with the qualified class name
		statements := override.FunctionBlock.Block.Statements
		require.Len(t, statements, 1)
		call, ok := statements[0].(*ast.ExpressionStatement)
		require.True(t, ok)
		invocation, ok := call.Expression.(*ast.InvocationExpression)
		require.True(t, ok)
		callee, ok := invocation.InvokedExpression.(*ast.DeclarationReferenceExpression)
		require.True(t, ok)
		assert.Same(t, trap, callee.Declaration)

		require.Len(t, invocation.Arguments, 1)
		name, ok := invocation.Arguments[0].Expression.(*ast.StringExpression)
		require.True(t, ok)
		assert.Equal(t, "Demo.Sub", name.Value)
	})

	t.Run("stub without a trap declaration is diagnosed", func(t *testing.T) {

		t.Parallel()

		base, sub := newClassPair()
		superclassInitializer := newTestSuperclassInitializer(base)

		synthesizer := newTestSynthesizer()
		override := synthesizer.CreateDesignatedInitializerOverride(
			sub,
			superclassInitializer,
			DesignatedInitializerKindStub,
		)

		require.NotNil(t, override)
		assert.True(t, override.Stub)
		assert.False(t, override.HasBody())

		errs := synthesizer.Session.Errors()
		require.Len(t, errs, 1)
		var missingErr *MissingUnimplementedInitializerError
		require.ErrorAs(t, errs[0], &missingErr)
		assert.Equal(t, "Demo.Sub", missingErr.ClassName)
	})
}
