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

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
)

// synthesisCase is a randomly generated stored property in a randomly
// chosen nominal type.
type synthesisCase struct {
	CompositeKind common.CompositeKind
	IsConstant    bool
	Final         bool
	Lazy          bool
	Observed      bool
}

func genSynthesisCase() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(
			common.CompositeKindStructure,
			common.CompositeKindClass,
			common.CompositeKindEnumeration,
		),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	).Map(func(values []interface{}) synthesisCase {
		testCase := synthesisCase{
			CompositeKind: values[0].(common.CompositeKind),
			IsConstant:    values[1].(bool),
			Final:         values[2].(bool),
			Lazy:          values[3].(bool),
			Observed:      values[4].(bool),
		}
		// lazy and observed properties are always mutable,
		// and are mutually exclusive
		if testCase.Lazy {
			testCase.IsConstant = false
			testCase.Observed = false
		}
		if testCase.Observed {
			testCase.IsConstant = false
		}
		return testCase
	})
}

func (testCase synthesisCase) build() (*ast.VariableDeclaration, *ast.CompositeDeclaration) {
	nominal := newTestComposite(
		testCase.CompositeKind,
		"Subject",
		newTestSourceFile(),
	)
	variable := newTestVariable("value", "Int", testCase.IsConstant, nominal)
	variable.Final = testCase.Final
	if testCase.Lazy {
		variable.IsLazy = true
		variable.Value = ast.NewImplicitIdentifierExpression("initialValue")
	}
	if testCase.Observed {
		variable.WillSet = newTestObserver(common.AccessorKindWillSet, nominal)
	}
	return variable, nominal
}

func TestSynthesisProperties(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("every completed property has a getter", prop.ForAll(
		func(testCase synthesisCase) bool {
			variable, _ := testCase.build()
			synthesizer := newTestSynthesizer()
			synthesizer.MaybeAddAccessorsToVariable(variable)
			return variable.Getter() != nil &&
				synthesizer.State(variable) == SynthesisStateComplete
		},
		genSynthesisCase(),
	))

	properties.Property("a setter exists exactly for mutable storage", prop.ForAll(
		func(testCase synthesisCase) bool {
			variable, _ := testCase.build()
			synthesizer := newTestSynthesizer()
			synthesizer.MaybeAddAccessorsToVariable(variable)
			return (variable.Setter() != nil) == !testCase.IsConstant
		},
		genSynthesisCase(),
	))

	properties.Property("a materializeForSet implies a setter", prop.ForAll(
		func(testCase synthesisCase) bool {
			variable, _ := testCase.build()
			synthesizer := newTestSynthesizer()
			synthesizer.MaybeAddAccessorsToVariable(variable)
			return variable.MaterializeForSet() == nil ||
				variable.Setter() != nil
		},
		genSynthesisCase(),
	))

	properties.Property("synthesis is idempotent", prop.ForAll(
		func(testCase synthesisCase) bool {
			variable, nominal := testCase.build()
			synthesizer := newTestSynthesizer()

			synthesizer.MaybeAddAccessorsToVariable(variable)
			memberCount := len(nominal.Members.Declarations())
			getter := variable.Getter()
			setter := variable.Setter()

			synthesizer.MaybeAddAccessorsToVariable(variable)

			return len(nominal.Members.Declarations()) == memberCount &&
				variable.Getter() == getter &&
				variable.Setter() == setter
		},
		genSynthesisCase(),
	))

	properties.Property("all accessors are registered as members", prop.ForAll(
		func(testCase synthesisCase) bool {
			variable, nominal := testCase.build()
			synthesizer := newTestSynthesizer()
			synthesizer.MaybeAddAccessorsToVariable(variable)

			for _, accessor := range []*ast.FunctionDeclaration{
				variable.Getter(),
				variable.Setter(),
				variable.MaterializeForSet(),
			} {
				if accessor == nil {
					continue
				}
				found := false
				for _, declaration := range nominal.Members.Declarations() {
					if declaration == ast.Declaration(accessor) {
						found = true
						break
					}
				}
				if !found {
					return false
				}
			}
			return true
		},
		genSynthesisCase(),
	))

	properties.TestingRun(t)
}
