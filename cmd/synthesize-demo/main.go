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

// synthesize-demo constructs a small sample module, runs declaration
// synthesis on it, and prints the synthesized declarations and any
// diagnostics.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/turbolent/prettier"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
	"github.com/tienex/swift/pretty"
	"github.com/tienex/swift/sema"
)

const maxLineWidth = 80

var verbose = len(os.Args) > 1 && os.Args[1] == "-v"

func printDeclaration(declaration ast.Declaration) {
	if hasDoc, ok := declaration.(ast.HasDoc); ok {
		var builder strings.Builder
		prettier.Prettier(&builder, hasDoc.Doc(), maxLineWidth, "    ")
		fmt.Println(builder.String())
		return
	}
	if verbose {
		prettyPrinter := pp.New()
		prettyPrinter.SetExportedOnly(true)
		_, _ = prettyPrinter.Println(declaration)
		return
	}
	fmt.Printf(
		"%s %s\n",
		declaration.DeclarationKind().Name(),
		declaration.DeclarationIdentifier().Identifier,
	)
}

func intType() *ast.TypeAnnotation {
	return ast.NewTypeAnnotation(&ast.NominalType{
		Identifier: ast.Identifier{Identifier: "Int"},
	})
}

func main() {
	sourceFile := ast.NewSourceFile("Demo", ast.SourceFileKindLibrary, nil)

	counter := ast.NewCompositeDeclaration(
		common.AccessibilityPublic,
		common.CompositeKindStructure,
		ast.Identifier{Identifier: "Counter"},
		ast.NewEmptyMembers(),
		sourceFile,
		"",
		ast.EmptyRange,
	)
	sourceFile.Members.Add(counter)

	count := ast.NewVariableDeclaration(
		common.AccessibilityPublic,
		false,
		ast.Identifier{Identifier: "count"},
		intType(),
		nil,
		counter,
		"",
		ast.EmptyRange,
	)
	counter.Members.Add(count)

	limit := ast.NewVariableDeclaration(
		common.AccessibilityPublic,
		true,
		ast.Identifier{Identifier: "limit"},
		intType(),
		nil,
		counter,
		"",
		ast.EmptyRange,
	)
	counter.Members.Add(limit)

	session := sema.NewSession()
	synthesizer := sema.NewSynthesizer(&sema.Config{}, session)

	synthesizer.MaybeAddAccessorsToVariable(count)
	synthesizer.MaybeAddAccessorsToVariable(limit)
	synthesizer.AddImplicitConstructor(counter, sema.ImplicitConstructorKindMemberwise)

	fmt.Println("Members of Counter after synthesis:")
	fmt.Println()
	for _, declaration := range counter.Members.Declarations() {
		printDeclaration(declaration)
	}

	if errs := session.Errors(); len(errs) > 0 {
		printer := pretty.NewErrorPrettyPrinter(os.Stderr, true)
		for _, err := range errs {
			_ = printer.PrettyPrintError(err, "demo.swift", nil)
		}
		os.Exit(1)
	}
}
