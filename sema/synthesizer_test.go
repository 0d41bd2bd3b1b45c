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
	"golang.org/x/xerrors"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
)

func TestSynthesizerState(t *testing.T) {

	t.Parallel()

	structure := newTestComposite(
		common.CompositeKindStructure,
		"Counter",
		newTestSourceFile(),
	)
	variable := newTestVariable("count", "Int", false, structure)

	synthesizer := newTestSynthesizer()
	assert.Equal(t, SynthesisStateUnsynthesized, synthesizer.State(variable))

	synthesizer.MaybeAddAccessorsToVariable(variable)
	assert.Equal(t, SynthesisStateComplete, synthesizer.State(variable))
}

func TestSynthesizerNilDefaults(t *testing.T) {

	t.Parallel()

	synthesizer := NewSynthesizer(nil, nil)
	require.NotNil(t, synthesizer.Config)
	require.NotNil(t, synthesizer.Session)
}

func TestTypeCheckFirstPassErrorAbortsSecondPass(t *testing.T) {

	t.Parallel()

	structure := newTestComposite(
		common.CompositeKindStructure,
		"Counter",
		newTestSourceFile(),
	)
	variable := newTestVariable("count", "Int", false, structure)

	firstPassErr := xerrors.New("unresolved type")
	var secondPassRuns int
	synthesizer := NewSynthesizer(
		&Config{
			TypeCheckService: TypeCheckServiceFunc(
				func(_ ast.Declaration, firstPassOnly bool) error {
					if firstPassOnly {
						return firstPassErr
					}
					secondPassRuns++
					return nil
				},
			),
		},
		NewSession(),
	)

	synthesizer.MaybeAddAccessorsToVariable(variable)

	assert.Zero(t, secondPassRuns)
	errs := synthesizer.Session.Errors()
	require.NotEmpty(t, errs)
	assert.ErrorIs(t, errs[0], firstPassErr)
}

func TestDeclarationsWithExistingAccessorsAreLeftAlone(t *testing.T) {

	t.Parallel()

	structure := newTestComposite(
		common.CompositeKindStructure,
		"Counter",
		newTestSourceFile(),
	)
	variable := newTestVariable("count", "Int", false, structure)

	existingGetter := &ast.FunctionDeclaration{
		AccessorKind: common.AccessorKindGetter,
		Identifier:   ast.Identifier{Identifier: "get"},
		Parent:       structure,
	}
	variable.MakeComputed(existingGetter, nil, nil)

	synthesizer := newTestSynthesizer()
	synthesizer.MaybeAddAccessorsToVariable(variable)

	assert.Same(t, existingGetter, variable.Getter())
	assert.Equal(t, SynthesisStateComplete, synthesizer.State(variable))
	// only the variable itself is in the member list
	assert.Len(t, structure.Members.Declarations(), 1)
}

func TestSynthesisStateString(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "SynthesisStateUnsynthesized", SynthesisStateUnsynthesized.String())
	assert.Equal(t, "SynthesisStateInProgress", SynthesisStateInProgress.String())
	assert.Equal(t, "SynthesisStateComplete", SynthesisStateComplete.String())
	assert.Equal(t, "SynthesisState(3)", SynthesisState(3).String())
}
