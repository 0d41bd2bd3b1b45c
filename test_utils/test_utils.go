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

package test_utils

import (
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
)

// AssertEqualWithDiff asserts that the two values are equal and
// reports the diff between them if they are not.
func AssertEqualWithDiff(t *testing.T, expected, actual any) {
	t.Helper()

	if assert.Equal(t, expected, actual) {
		return
	}

	prettyPrinter := pp.New()
	prettyPrinter.SetColoringEnabled(false)

	diff := pretty.Diff(expected, actual)
	s := ""
	for _, d := range diff {
		s += d + "\n"
	}

	t.Errorf(
		"Not equal:\n"+
			"expected: %s\n"+
			"actual:   %s\n\n"+
			"%s",
		prettyPrinter.Sprint(expected),
		prettyPrinter.Sprint(actual),
		s,
	)
}
