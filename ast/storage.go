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

	"github.com/tienex/swift/common"
	"github.com/tienex/swift/errors"
)

// AccessSemantics records how a reference to a storage declaration
// accesses the underlying value.
type AccessSemantics uint8

const (
	// AccessSemanticsOrdinary goes through the declaration's accessors,
	// with dynamic dispatch where applicable.
	AccessSemanticsOrdinary AccessSemantics = iota
	// AccessSemanticsDirectToStorage bypasses the accessors and reads
	// or writes the underlying stored value.
	AccessSemanticsDirectToStorage
)

func (s AccessSemantics) String() string {
	switch s {
	case AccessSemanticsOrdinary:
		return "ordinary"
	case AccessSemanticsDirectToStorage:
		return "direct_to_storage"
	}

	panic(errors.NewUnreachableError())
}

func (s AccessSemantics) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// StorageDeclaration is a declaration with storage semantics:
// a variable or a subscript. Its accessors are synthesized lazily,
// and its storage kind records which of them exist and whether a
// backing stored value remains.
type StorageDeclaration interface {
	Declaration
	isStorageDeclaration()

	StorageKind() common.StorageKind
	IsStatic() bool
	IsFinal() bool
	IsDynamic() bool
	IsForeignImported() bool
	IsInvalid() bool
	IsGetterMutating() bool
	IsSetterNonMutating() bool
	Getter() *FunctionDeclaration
	Setter() *FunctionDeclaration
	MaterializeForSet() *FunctionDeclaration
	MutableAddressor() *FunctionDeclaration
	OverriddenStorage() StorageDeclaration
	StorageAvailability() Availability
	HasAccessorFunctions() bool

	AddTrivialAccessors(getter, setter, materializeForSet *FunctionDeclaration)
	MakeComputed(getter, setter, materializeForSet *FunctionDeclaration)
	SetMaterializeForSet(materializeForSet *FunctionDeclaration)

	// ElementTypeAnnotation is the type of the stored or computed value
	ElementTypeAnnotation() *TypeAnnotation
	// IndexParameterList is nil for variables
	IndexParameterList() *ParameterList
	StorageContext() DeclarationContext
}

// AbstractStorage holds the storage state shared by variable and
// subscript declarations. It is embedded, so its methods are promoted
// onto the declaration.
type AbstractStorage struct {
	Kind common.StorageKind

	Static  bool
	Final   bool
	Dynamic bool
	// Foreign marks declarations imported from a foreign module,
	// whose layout is not under this compiler's control
	Foreign bool
	Invalid bool

	GetterMutating    bool
	SetterNonMutating bool

	GetterFunction            *FunctionDeclaration `json:"-"`
	SetterFunction            *FunctionDeclaration `json:"-"`
	MaterializeForSetFunction *FunctionDeclaration `json:"-"`
	MutableAddressorFunction  *FunctionDeclaration `json:"-"`

	Overridden StorageDeclaration `json:"-"`

	Availability Availability
}

func (s *AbstractStorage) StorageKind() common.StorageKind {
	return s.Kind
}

func (s *AbstractStorage) IsStatic() bool {
	return s.Static
}

func (s *AbstractStorage) IsFinal() bool {
	return s.Final
}

func (s *AbstractStorage) IsDynamic() bool {
	return s.Dynamic
}

func (s *AbstractStorage) IsForeignImported() bool {
	return s.Foreign
}

func (s *AbstractStorage) IsInvalid() bool {
	return s.Invalid
}

func (s *AbstractStorage) IsGetterMutating() bool {
	return s.GetterMutating
}

func (s *AbstractStorage) IsSetterNonMutating() bool {
	return s.SetterNonMutating
}

func (s *AbstractStorage) Getter() *FunctionDeclaration {
	return s.GetterFunction
}

func (s *AbstractStorage) Setter() *FunctionDeclaration {
	return s.SetterFunction
}

func (s *AbstractStorage) MaterializeForSet() *FunctionDeclaration {
	return s.MaterializeForSetFunction
}

func (s *AbstractStorage) MutableAddressor() *FunctionDeclaration {
	return s.MutableAddressorFunction
}

func (s *AbstractStorage) OverriddenStorage() StorageDeclaration {
	return s.Overridden
}

func (s *AbstractStorage) StorageAvailability() Availability {
	return s.Availability
}

func (s *AbstractStorage) HasAccessorFunctions() bool {
	return s.GetterFunction != nil
}

// AddTrivialAccessors records synthesized trivial accessor functions.
// The storage kind must not already expect accessors.
func (s *AbstractStorage) AddTrivialAccessors(
	getter *FunctionDeclaration,
	setter *FunctionDeclaration,
	materializeForSet *FunctionDeclaration,
) {
	if s.HasAccessorFunctions() {
		panic(errors.NewUnexpectedError(
			"accessors already present for storage kind %s",
			s.Kind.Name(),
		))
	}

	switch s.Kind {
	case common.StorageKindStored:
		s.Kind = common.StorageKindStoredWithTrivialAccessors
	case common.StorageKindAddressed:
		s.Kind = common.StorageKindAddressedWithTrivialAccessors
	default:
		panic(errors.NewUnexpectedError(
			"cannot add trivial accessors to storage kind %s",
			s.Kind.Name(),
		))
	}

	s.GetterFunction = getter
	s.SetterFunction = setter
	s.MaterializeForSetFunction = materializeForSet
}

// MakeComputed turns the declaration into computed storage
// with the given accessor functions.
func (s *AbstractStorage) MakeComputed(
	getter *FunctionDeclaration,
	setter *FunctionDeclaration,
	materializeForSet *FunctionDeclaration,
) {
	s.Kind = common.StorageKindComputed
	s.GetterFunction = getter
	s.SetterFunction = setter
	s.MaterializeForSetFunction = materializeForSet
	s.MutableAddressorFunction = nil
}

// MakeObserved records accessor functions for observed storage.
// Inherited observed storage has no backing store of its own and
// forwards to the overridden declaration.
func (s *AbstractStorage) MakeObserved(
	getter *FunctionDeclaration,
	setter *FunctionDeclaration,
	inherited bool,
) {
	switch s.Kind {
	case common.StorageKindStored,
		common.StorageKindStoredWithObservers,
		common.StorageKindInheritedWithObservers,
		common.StorageKindAddressedWithObservers:
		break
	default:
		panic(errors.NewUnexpectedError(
			"cannot observe storage kind %s",
			s.Kind.Name(),
		))
	}

	if s.Kind == common.StorageKindStored {
		if inherited {
			s.Kind = common.StorageKindInheritedWithObservers
		} else {
			s.Kind = common.StorageKindStoredWithObservers
		}
	}

	s.GetterFunction = getter
	s.SetterFunction = setter
}

// SetMaterializeForSet records a synthesized materializeForSet accessor.
func (s *AbstractStorage) SetMaterializeForSet(materializeForSet *FunctionDeclaration) {
	s.MaterializeForSetFunction = materializeForSet
}
