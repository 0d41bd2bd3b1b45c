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

func TestAddImplicitDestructor(t *testing.T) {

	t.Parallel()

	t.Run("class without a destructor gets an empty one", func(t *testing.T) {

		t.Parallel()

		class := newTestComposite(
			common.CompositeKindClass,
			"View",
			newTestSourceFile(),
		)

		synthesizer := newTestSynthesizer()
		destructor := synthesizer.AddImplicitDestructor(class)

		require.NotNil(t, destructor)
		assert.True(t, destructor.Implicit)
		require.NotNil(t, destructor.SelfParameter)
		assert.True(t, destructor.FunctionBlock.Block.IsEmpty())
		assert.True(t, class.HasDestructor())

		declarations := class.Members.Declarations()
		assert.Same(t, destructor, declarations[len(declarations)-1])
	})

	t.Run("existing destructor is kept", func(t *testing.T) {

		t.Parallel()

		class := newTestComposite(
			common.CompositeKindClass,
			"View",
			newTestSourceFile(),
		)
		existing := &ast.DestructorDeclaration{
			Identifier:    ast.Identifier{Identifier: "deinit"},
			FunctionBlock: ast.NewFunctionBlock(ast.NewImplicitBlock()),
			Parent:        class,
		}
		class.Members.Add(existing)

		synthesizer := newTestSynthesizer()
		assert.Nil(t, synthesizer.AddImplicitDestructor(class))
		assert.Len(t, class.Members.Destructors(), 1)
	})

	t.Run("non-class types get none", func(t *testing.T) {

		t.Parallel()

		structure := newTestComposite(
			common.CompositeKindStructure,
			"Point",
			newTestSourceFile(),
		)

		synthesizer := newTestSynthesizer()
		assert.Nil(t, synthesizer.AddImplicitDestructor(structure))
	})

	t.Run("invalid classes get none", func(t *testing.T) {

		t.Parallel()

		class := newTestComposite(
			common.CompositeKindClass,
			"View",
			newTestSourceFile(),
		)
		class.Invalid = true

		synthesizer := newTestSynthesizer()
		assert.Nil(t, synthesizer.AddImplicitDestructor(class))
	})

	t.Run("foreign class destructor is registered externally", func(t *testing.T) {

		t.Parallel()

		class := newTestComposite(
			common.CompositeKindClass,
			"Legacy",
			newTestSourceFile(),
		)
		class.Foreign = true

		synthesizer := newTestSynthesizer()
		destructor := synthesizer.AddImplicitDestructor(class)

		externals := synthesizer.Session.ExternalDeclarations()
		require.Len(t, externals, 1)
		assert.Same(t, destructor, externals[0])
	})
}
