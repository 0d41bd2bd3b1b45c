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
)

// doesStorageNeedSetter decides setter synthesis for storage that does
// not have accessor functions yet:
//
//	stored, mutable:               yes
//	stored, immutable (let):       no
//	addressed, mutable addressor:  yes
//	addressed, no mutable addressor: no
func doesStorageNeedSetter(storage ast.StorageDeclaration) bool {
	switch storage.StorageKind() {
	case common.StorageKindStored:
		if variable, ok := storage.(*ast.VariableDeclaration); ok {
			return !variable.IsConstant
		}
		return true
	case common.StorageKindAddressed:
		return storage.MutableAddressor() != nil
	default:
		return false
	}
}

// registerAccessors adds the synthesized accessors to the owning
// context's member list directly after the storage declaration,
// type-checks them, and registers them externally when required.
// All accessors are fully built before this runs: registration is
// all-or-nothing per storage declaration.
func (synthesizer *Synthesizer) registerAccessors(
	storage ast.StorageDeclaration,
	accessors ...*ast.FunctionDeclaration,
) {
	context := storage.StorageContext()
	var after ast.Declaration = storage
	for _, accessor := range accessors {
		if accessor == nil {
			continue
		}
		addMemberToContext(context, after, accessor)
		after = accessor
		synthesizer.typeCheck(accessor)
		synthesizer.registerIfExternal(storage, accessor)
	}
}

// registerAccessor adds a late accessor after the ones already in the
// member list.
func (synthesizer *Synthesizer) registerAccessor(
	storage ast.StorageDeclaration,
	accessor *ast.FunctionDeclaration,
) {
	var after ast.Declaration = storage
	if getter := storage.Getter(); getter != nil {
		after = getter
	}
	if setter := storage.Setter(); setter != nil {
		after = setter
	}
	addMemberToContext(storage.StorageContext(), after, accessor)
	synthesizer.typeCheck(accessor)
	synthesizer.registerIfExternal(storage, accessor)
}

// AddTrivialAccessorsToStorage gives stored or addressed storage its
// uniform accessor set: a trivial getter, a trivial setter when the
// policy requires one, and a materializeForSet when the storage lives
// in a nominal type.
func (synthesizer *Synthesizer) AddTrivialAccessorsToStorage(
	storage ast.StorageDeclaration,
) {
	getter := synthesizer.createGetterPrototype(storage)
	synthesizer.synthesizeTrivialGetterBody(getter, storage)

	var setter *ast.FunctionDeclaration
	if doesStorageNeedSetter(storage) {
		setter = synthesizer.createSetterPrototype(storage)
		synthesizer.synthesizeTrivialSetterBody(setter, storage)
	}

	storage.AddTrivialAccessors(getter, setter, nil)

	synthesizer.registerAccessors(storage, getter, setter)
	synthesizer.MaybeAddMaterializeForSet(storage)
}

// MaybeAddMaterializeForSet adds a materializeForSet accessor to the
// storage when one is required and none exists. Returns the accessor,
// existing or new, or nil when the policy skips it. Idempotent.
func (synthesizer *Synthesizer) MaybeAddMaterializeForSet(
	storage ast.StorageDeclaration,
) *ast.FunctionDeclaration {

	if existing := storage.MaterializeForSet(); existing != nil {
		return existing
	}

	// a materializeForSet without a setter would have nothing to
	// write back through
	if storage.Setter() == nil {
		return nil
	}

	if storage.IsInvalid() {
		return nil
	}

	// file-scope globals have no dispatch concern: direct addressing
	// suffices
	nominal := ast.ContainingNominalType(storage.StorageContext())
	if nominal == nil {
		return nil
	}

	switch nominal.CompositeKind {
	case common.CompositeKindEnumeration:
		// enums have no mutable storage to materialize
		return nil

	case common.CompositeKindProtocol:
		// a purely foreign-dispatched protocol has no dispatch table
		// to hold the entry
		if nominal.ForeignDispatch {
			return nil
		}

	case common.CompositeKindClass:
		// a final class property that overrides nothing with a
		// materializeForSet is only ever accessed directly
		if storage.IsFinal() && !overridesMaterializeForSet(storage) {
			return nil
		}

	case common.CompositeKindStructure:
		// foreign-imported struct members are completed at a later
		// synthesis point
		if nominal.Foreign {
			return nil
		}
	}

	// protocol extensions have no dispatch entries either
	if ast.IsProtocolExtensionContext(storage.StorageContext()) {
		return nil
	}

	materializeForSet := synthesizer.createMaterializeForSetPrototype(storage)
	storage.SetMaterializeForSet(materializeForSet)

	synthesizer.registerAccessor(storage, materializeForSet)
	return materializeForSet
}

func overridesMaterializeForSet(storage ast.StorageDeclaration) bool {
	overridden := storage.OverriddenStorage()
	return overridden != nil && overridden.MaterializeForSet() != nil
}

// ConvertStoredVarInProtocolToComputed upgrades a stored property
// declared in a protocol to a computed requirement: bodyless accessor
// prototypes only, since a protocol provides no storage.
func (synthesizer *Synthesizer) ConvertStoredVarInProtocolToComputed(
	variable *ast.VariableDeclaration,
) {
	getter := synthesizer.createGetterPrototype(variable)

	var setter *ast.FunctionDeclaration
	if !variable.IsConstant {
		setter = synthesizer.createSetterPrototype(variable)
	}

	variable.MakeComputed(getter, setter, nil)

	synthesizer.registerAccessors(variable, getter, setter)
	synthesizer.MaybeAddMaterializeForSet(variable)
}

// SynthesizeSetterForMutableAddressedStorage fills in the trivial
// setter body of storage that computes its address: the store goes
// through the mutable addressor.
func (synthesizer *Synthesizer) SynthesizeSetterForMutableAddressedStorage(
	storage ast.StorageDeclaration,
) {
	setter := storage.Setter()
	if setter == nil || setter.HasBody() {
		return
	}
	synthesizer.synthesizeTrivialSetterBody(setter, storage)
	synthesizer.typeCheck(setter)
}

// SynthesizeWitnessAccessors completes the accessors a storage
// declaration needs to witness a protocol requirement: storage
// without accessors gets the full trivial set; storage that already
// has them gains a materializeForSet when the requirement is settable
// and not foreign-dispatched.
func (synthesizer *Synthesizer) SynthesizeWitnessAccessors(
	storage ast.StorageDeclaration,
	requirement ast.StorageDeclaration,
) {
	if !storage.HasAccessorFunctions() {
		synthesizer.AddTrivialAccessorsToStorage(storage)
		return
	}

	if requirement.Setter() == nil {
		return
	}
	if protocol := ast.ContainingNominalType(requirement.StorageContext()); protocol != nil &&
		protocol.ForeignDispatch {
		return
	}
	synthesizer.MaybeAddMaterializeForSet(storage)
}

// MaybeAddAccessorsToVariable is the accessor-completion driver for a
// variable declaration: it decides which accessors the variable needs,
// synthesizes them in order, registers them, and type-checks them.
// Revisiting a declaration already in progress or complete is a no-op.
func (synthesizer *Synthesizer) MaybeAddAccessorsToVariable(
	variable *ast.VariableDeclaration,
) {
	if synthesizer.State(variable) != SynthesisStateUnsynthesized {
		return
	}
	if variable.HasAccessorFunctions() {
		synthesizer.setState(variable, SynthesisStateComplete)
		return
	}

	synthesizer.setState(variable, SynthesisStateInProgress)
	defer func() {
		synthesizer.setState(variable, SynthesisStateComplete)
	}()

	if variable.IsLazy {
		synthesizer.SynthesizeLazyAccessors(variable)
		synthesizer.registerAccessors(variable, variable.Getter(), variable.Setter())
		synthesizer.MaybeAddMaterializeForSet(variable)
		return
	}

	// implicit variables, including synthesized backing fields,
	// are accessed directly
	if variable.Implicit {
		return
	}

	if variable.IsLocal() {
		return
	}

	// lowered intermediate source arrives with pre-resolved accessors
	if sourceFile := ast.ContainingSourceFile(variable.Parent); sourceFile != nil &&
		sourceFile.Kind == ast.SourceFileKindIntermediate {
		return
	}

	nominal := ast.ContainingNominalType(variable.Parent)

	if nominal == nil {
		// fixed-layout globals are accessed directly everywhere
		if variable.FixedLayout {
			return
		}
	} else if nominal.IsProtocol() {
		synthesizer.ConvertStoredVarInProtocolToComputed(variable)
		return
	}

	if variable.IsForeignManaged {
		synthesizer.ConvertForeignManagedStoredVarToComputed(variable)
		return
	}

	// foreign-imported struct members are completed at a later
	// synthesis point
	if nominal != nil &&
		nominal.Foreign &&
		nominal.CompositeKind == common.CompositeKindStructure {
		return
	}

	if variable.HasObservers() {
		synthesizer.SynthesizeObservingAccessors(variable)
		synthesizer.registerAccessors(variable, variable.Getter(), variable.Setter())
		synthesizer.MaybeAddMaterializeForSet(variable)
		return
	}

	synthesizer.AddTrivialAccessorsToStorage(variable)
}
