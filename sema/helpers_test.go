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

func newTestSynthesizer() *Synthesizer {
	return NewSynthesizer(&Config{}, NewSession())
}

func newTestSourceFile() *ast.SourceFile {
	return ast.NewSourceFile("Demo", ast.SourceFileKindLibrary, nil)
}

func newTestComposite(
	kind common.CompositeKind,
	name string,
	sourceFile *ast.SourceFile,
) *ast.CompositeDeclaration {
	composite := ast.NewCompositeDeclaration(
		common.AccessibilityInternal,
		kind,
		ast.Identifier{Identifier: name},
		ast.NewEmptyMembers(),
		sourceFile,
		"",
		ast.EmptyRange,
	)
	if sourceFile != nil {
		sourceFile.Members.Add(composite)
	}
	return composite
}

func newTestType(name string) *ast.NominalType {
	return &ast.NominalType{
		Identifier: ast.Identifier{Identifier: name},
	}
}

func newTestVariable(
	name string,
	typeName string,
	isConstant bool,
	parent ast.DeclarationContext,
) *ast.VariableDeclaration {
	variable := &ast.VariableDeclaration{
		Access:         common.AccessibilityInternal,
		IsConstant:     isConstant,
		Identifier:     ast.Identifier{Identifier: name},
		TypeAnnotation: ast.NewTypeAnnotation(newTestType(typeName)),
		Parent:         parent,
	}
	if members := parent.ContextMembers(); members != nil {
		members.Add(variable)
	}
	return variable
}

func newTestObserver(
	kind common.AccessorKind,
	parent ast.DeclarationContext,
) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{
		Access:       common.AccessibilityInternal,
		AccessorKind: kind,
		Identifier:   ast.Identifier{Identifier: kind.Keyword()},
		ParameterList: ast.NewImplicitParameterList(
			ast.NewImplicitParameter(
				"",
				SetterValueParameterName,
				ast.NewTypeAnnotation(newTestType("Int")),
			),
		),
		ReturnTypeAnnotation: ast.NewTypeAnnotation(ast.NewVoidType()),
		Parent:               parent,
	}
}

// newTestFoundationModule builds a Foundation source file declaring
// the copy protocol, for copying-property setter tests.
func newTestFoundationModule() *ast.SourceFile {
	foundation := ast.NewSourceFile(
		CopyProtocolModuleName,
		ast.SourceFileKindLibrary,
		nil,
	)
	newTestComposite(common.CompositeKindProtocol, CopyProtocolName, foundation)
	newTestComposite(common.CompositeKindProtocol, "NSCoding", foundation)
	return foundation
}

func newCopyTestSynthesizer(conforms bool) *Synthesizer {
	foundation := newTestFoundationModule()
	return NewSynthesizer(
		&Config{
			LookupModule: func(name string) *ast.SourceFile {
				if name == CopyProtocolModuleName {
					return foundation
				}
				return nil
			},
			ConformanceService: ConformanceServiceFunc(
				func(_ ast.Type, _ *ast.CompositeDeclaration) bool {
					return conforms
				},
			),
		},
		NewSession(),
	)
}
