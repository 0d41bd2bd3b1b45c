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
	"github.com/tienex/swift/common/orderedmap"
	"github.com/tienex/swift/errors"
)

//go:generate stringer -type=SynthesisState

// SynthesisState is the accessor-synthesis state of a storage
// declaration. Type-checking a synthesized body may re-enter the
// synthesizer for the same declaration; the InProgress state makes
// that re-entry a no-op instead of unbounded recursion.
type SynthesisState uint8

const (
	SynthesisStateUnsynthesized SynthesisState = iota
	SynthesisStateInProgress
	SynthesisStateComplete
)

// Synthesizer fabricates the implicit declarations the rest of the
// front end expects to exist: accessor functions for storage
// declarations, implicit constructors and destructors, and
// designated-initializer overrides.
//
// A Synthesizer is not safe for concurrent use.
type Synthesizer struct {
	Config  *Config
	Session *Session

	// states preserves synthesis order, so diagnostics and the
	// external declaration list stay deterministic across runs
	states *orderedmap.OrderedMap[ast.StorageDeclaration, SynthesisState]
}

func NewSynthesizer(config *Config, session *Session) *Synthesizer {
	if config == nil {
		config = &Config{}
	}
	if session == nil {
		session = NewSession()
	}
	return &Synthesizer{
		Config:  config,
		Session: session,
		states:  &orderedmap.OrderedMap[ast.StorageDeclaration, SynthesisState]{},
	}
}

// State returns the synthesis state of the given storage declaration.
func (synthesizer *Synthesizer) State(storage ast.StorageDeclaration) SynthesisState {
	state, _ := synthesizer.states.Get(storage)
	return state
}

func (synthesizer *Synthesizer) setState(
	storage ast.StorageDeclaration,
	state SynthesisState,
) {
	synthesizer.states.Set(storage, state)
}

func (synthesizer *Synthesizer) report(err error) {
	if err == nil {
		return
	}
	synthesizer.Session.report(err)
}

// typeCheck runs both type-checking passes on the declaration:
// signatures first, then bodies.
func (synthesizer *Synthesizer) typeCheck(declaration ast.Declaration) {
	service := synthesizer.Config.TypeCheckService
	if service == nil {
		return
	}
	if err := service.TypeCheckDeclaration(declaration, true); err != nil {
		synthesizer.report(err)
		return
	}
	synthesizer.report(service.TypeCheckDeclaration(declaration, false))
}

func (synthesizer *Synthesizer) convertToBoolean(expression ast.Expression) ast.Expression {
	convert := synthesizer.Config.ConvertToBoolean
	if convert == nil {
		convert = defaultConvertToBoolean
	}
	return convert(expression)
}

// addMemberToContext registers a synthesized declaration in the
// member list of the given context, directly after the declaration
// that produced it.
func addMemberToContext(
	context ast.DeclarationContext,
	after ast.Declaration,
	declaration ast.Declaration,
) {
	members := context.ContextMembers()
	if members == nil {
		panic(errors.NewUnexpectedError(
			"cannot add synthesized member to context without member list",
		))
	}
	members.InsertAfter(after, declaration)
}

// needsExternalRegistration reports whether a declaration synthesized
// for the given storage must be registered as externally visible:
// its owner originated in a foreign module, so nothing in this module
// may ever reference it, yet it must still be emitted.
func needsExternalRegistration(storage ast.StorageDeclaration) bool {
	if storage.IsForeignImported() {
		return true
	}
	nominal := ast.ContainingNominalType(storage.StorageContext())
	return nominal != nil && nominal.Foreign
}

// registerIfExternal appends the declaration to the session's external
// declaration list when the storage requires it.
func (synthesizer *Synthesizer) registerIfExternal(
	storage ast.StorageDeclaration,
	declaration ast.Declaration,
) {
	if !needsExternalRegistration(storage) {
		return
	}
	synthesizer.Session.RegisterExternalDeclaration(declaration)
}
