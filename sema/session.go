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

// Session is the per-compilation state shared across synthesizers:
// collected diagnostics and the external declaration list.
// It replaces any process-wide mutable state.
type Session struct {
	errors               []error
	externalDeclarations []ast.Declaration
}

func NewSession() *Session {
	return &Session{}
}

func (session *Session) report(err error) {
	session.errors = append(session.errors, err)
}

// Errors returns the diagnostics reported so far, in report order.
func (session *Session) Errors() []error {
	return session.errors
}

// RegisterExternalDeclaration records a synthesized declaration whose
// owner originated in a foreign module, so a later lowering stage
// emits it even without local references.
func (session *Session) RegisterExternalDeclaration(declaration ast.Declaration) {
	session.externalDeclarations = append(session.externalDeclarations, declaration)
}

// ExternalDeclarations returns the registered declarations,
// in registration order.
func (session *Session) ExternalDeclarations() []ast.Declaration {
	return session.externalDeclarations
}
