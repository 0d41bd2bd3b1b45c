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

package ast

import (
	"encoding/json"
)

type Arguments []*Argument

// Argument is a labeled value in an invocation.
type Argument struct {
	// Label is empty for unlabeled arguments
	Label      string
	Expression Expression
}

func NewArgument(label string, expression Expression) *Argument {
	return &Argument{
		Label:      label,
		Expression: expression,
	}
}

func NewUnlabeledArgument(expression Expression) *Argument {
	return &Argument{Expression: expression}
}

func (a *Argument) StartPosition() Position {
	return a.Expression.StartPosition()
}

func (a *Argument) EndPosition() Position {
	return a.Expression.EndPosition()
}

func (a *Argument) MarshalJSON() ([]byte, error) {
	type Alias Argument
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "Argument",
		Alias: (*Alias)(a),
	})
}
