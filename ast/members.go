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

// Members is the ordered list of declarations nested in a type,
// extension, or source file. Synthesized declarations are appended
// or inserted next to the declaration that produced them, so the
// per-kind filters are memoized and invalidated on mutation.
type Members struct {
	declarations []Declaration

	// memoized filters
	variables    []*VariableDeclaration
	functions    []*FunctionDeclaration
	subscripts   []*SubscriptDeclaration
	initializers []*InitializerDeclaration
	destructors  []*DestructorDeclaration
	composites   []*CompositeDeclaration
}

func NewMembers(declarations []Declaration) *Members {
	return &Members{declarations: declarations}
}

func NewEmptyMembers() *Members {
	return &Members{}
}

func (m *Members) Declarations() []Declaration {
	return m.declarations
}

func (m *Members) Len() int {
	return len(m.declarations)
}

// Add appends the declaration.
func (m *Members) Add(declaration Declaration) {
	m.declarations = append(m.declarations, declaration)
	m.invalidate()
}

// InsertAfter inserts the declaration directly after the given
// existing member, or appends when the member is not found.
func (m *Members) InsertAfter(after Declaration, declaration Declaration) {
	for i, existing := range m.declarations {
		if existing == after {
			m.declarations = append(m.declarations, nil)
			copy(m.declarations[i+2:], m.declarations[i+1:])
			m.declarations[i+1] = declaration
			m.invalidate()
			return
		}
	}
	m.Add(declaration)
}

func (m *Members) invalidate() {
	m.variables = nil
	m.functions = nil
	m.subscripts = nil
	m.initializers = nil
	m.destructors = nil
	m.composites = nil
}

func (m *Members) Variables() []*VariableDeclaration {
	if m.variables == nil {
		m.variables = filterDeclarations[*VariableDeclaration](m.declarations)
	}
	return m.variables
}

func (m *Members) Functions() []*FunctionDeclaration {
	if m.functions == nil {
		m.functions = filterDeclarations[*FunctionDeclaration](m.declarations)
	}
	return m.functions
}

func (m *Members) Subscripts() []*SubscriptDeclaration {
	if m.subscripts == nil {
		m.subscripts = filterDeclarations[*SubscriptDeclaration](m.declarations)
	}
	return m.subscripts
}

func (m *Members) Initializers() []*InitializerDeclaration {
	if m.initializers == nil {
		m.initializers = filterDeclarations[*InitializerDeclaration](m.declarations)
	}
	return m.initializers
}

func (m *Members) Destructors() []*DestructorDeclaration {
	if m.destructors == nil {
		m.destructors = filterDeclarations[*DestructorDeclaration](m.declarations)
	}
	return m.destructors
}

func (m *Members) Composites() []*CompositeDeclaration {
	if m.composites == nil {
		m.composites = filterDeclarations[*CompositeDeclaration](m.declarations)
	}
	return m.composites
}

// FunctionsByIdentifier returns the functions with the given name.
func (m *Members) FunctionsByIdentifier(identifier string) []*FunctionDeclaration {
	var result []*FunctionDeclaration
	for _, function := range m.Functions() {
		if function.Identifier.Identifier == identifier {
			result = append(result, function)
		}
	}
	return result
}

func filterDeclarations[T Declaration](declarations []Declaration) []T {
	result := make([]T, 0)
	for _, declaration := range declarations {
		if typed, ok := declaration.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

func (m *Members) Walk(walkChild func(Element)) {
	for _, declaration := range m.declarations {
		walkChild(declaration)
	}
}

func (m *Members) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Declarations []Declaration
	}{
		Declarations: m.declarations,
	})
}
