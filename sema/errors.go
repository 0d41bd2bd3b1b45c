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
	"fmt"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
	"github.com/tienex/swift/errors"
)

// SemanticError is an error in the program being compiled,
// reported with a source position.
type SemanticError interface {
	errors.UserError
	ast.HasPosition
	isSemanticError()
}

// SuggestIdentifier returns the closest match for the given identifier
// among the options, or the empty string when nothing is close enough.
func SuggestIdentifier(identifier string, options []string) string {
	bestDistance := len(identifier)
	bestOption := ""
	for _, option := range options {
		distance := levenshtein.DistanceForStrings(
			[]rune(identifier),
			[]rune(option),
			levenshtein.DefaultOptions,
		)
		if distance < bestDistance {
			bestDistance = distance
			bestOption = option
		}
	}
	return bestOption
}

// MissingCopyProtocolConformanceError

// MissingCopyProtocolConformanceError is reported when a copying
// property's value type does not conform to the copy protocol.
// The setter degrades to an uncopied assignment.
type MissingCopyProtocolConformanceError struct {
	Type         ast.Type
	ProtocolName string
	// AvailableProtocols are the protocols the type does conform to,
	// candidates for the suggestion
	AvailableProtocols []string
	ast.Range
}

var _ SemanticError = &MissingCopyProtocolConformanceError{}
var _ errors.SecondaryError = &MissingCopyProtocolConformanceError{}

func (*MissingCopyProtocolConformanceError) isSemanticError() {}

func (*MissingCopyProtocolConformanceError) IsUserError() {}

func (e *MissingCopyProtocolConformanceError) Error() string {
	return fmt.Sprintf(
		"copying property requires type `%s` to conform to `%s`",
		e.Type,
		e.ProtocolName,
	)
}

func (e *MissingCopyProtocolConformanceError) SecondaryError() string {
	suggestion := SuggestIdentifier(e.ProtocolName, e.AvailableProtocols)
	if suggestion == "" {
		return "the value is assigned without copying"
	}
	return fmt.Sprintf(
		"the value is assigned without copying; did you mean `%s`?",
		suggestion,
	)
}

// UnsupportedVariadicForwardingError

// UnsupportedVariadicForwardingError is reported when an initializer
// override would have to forward a variadic parameter to the
// superclass initializer. The override body degrades to a stub.
type UnsupportedVariadicForwardingError struct {
	SuperclassInitializer *ast.InitializerDeclaration
	ast.Range
}

var _ SemanticError = &UnsupportedVariadicForwardingError{}
var _ errors.ErrorNotes = &UnsupportedVariadicForwardingError{}

func (*UnsupportedVariadicForwardingError) isSemanticError() {}

func (*UnsupportedVariadicForwardingError) IsUserError() {}

func (e *UnsupportedVariadicForwardingError) Error() string {
	return "cannot forward variadic parameter to superclass initializer"
}

func (e *UnsupportedVariadicForwardingError) ErrorNotes() []errors.ErrorNote {
	return []errors.ErrorNote{
		&VariadicSuperclassInitializerNote{
			Range: ast.NewRangeFromPositioned(e.SuperclassInitializer),
		},
	}
}

// VariadicSuperclassInitializerNote points at the superclass
// initializer whose variadic parameter cannot be forwarded.
type VariadicSuperclassInitializerNote struct {
	ast.Range
}

var _ errors.ErrorNote = &VariadicSuperclassInitializerNote{}

func (n *VariadicSuperclassInitializerNote) Message() string {
	return "superclass initializer declared here"
}

// MissingUnimplementedInitializerError

// MissingUnimplementedInitializerError is reported when a stub body
// is required but no trap declaration is configured.
// The stub body is left empty.
type MissingUnimplementedInitializerError struct {
	ClassName string
	ast.Range
}

var _ SemanticError = &MissingUnimplementedInitializerError{}
var _ errors.SecondaryError = &MissingUnimplementedInitializerError{}

func (*MissingUnimplementedInitializerError) isSemanticError() {}

func (*MissingUnimplementedInitializerError) IsUserError() {}

func (e *MissingUnimplementedInitializerError) Error() string {
	return fmt.Sprintf(
		"cannot synthesize stub initializer for class `%s`: "+
			"missing unimplemented-initializer runtime function",
		e.ClassName,
	)
}

func (e *MissingUnimplementedInitializerError) SecondaryError() string {
	return "the stub initializer is left without a body"
}

// InvalidSynthesisTargetError

// InvalidSynthesisTargetError is reported when synthesis is requested
// for a declaration kind it does not apply to, e.g. a memberwise
// initializer for a class. The request is ignored.
type InvalidSynthesisTargetError struct {
	ExpectedKind common.DeclarationKind
	ActualKind   common.DeclarationKind
	ast.Range
}

var _ SemanticError = &InvalidSynthesisTargetError{}

func (*InvalidSynthesisTargetError) isSemanticError() {}

func (*InvalidSynthesisTargetError) IsUserError() {}

func (e *InvalidSynthesisTargetError) Error() string {
	return fmt.Sprintf(
		"synthesis requires %s, got %s",
		e.ExpectedKind.Name(),
		e.ActualKind.Name(),
	)
}
