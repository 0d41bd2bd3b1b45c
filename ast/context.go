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

// DeclarationContext is a node that owns member declarations:
// a source file, a composite declaration, an extension declaration,
// or a function (for local declarations and closures).
//
// Contexts form a tree: every context except a source file
// has a parent context.
type DeclarationContext interface {
	isDeclarationContext()
	ContextParent() DeclarationContext
	// ContextMembers returns the member list of the context,
	// or nil if the context does not own members by name
	// (e.g. a function context).
	ContextMembers() *Members
	IsTypeContext() bool
	IsLocalContext() bool
}

// ContainingNominalType returns the nominal type declaration
// a context belongs to: the composite declaration itself,
// or the extended composite declaration for an extension.
// Returns nil for all other contexts.
func ContainingNominalType(context DeclarationContext) *CompositeDeclaration {
	switch context := context.(type) {
	case *CompositeDeclaration:
		return context
	case *ExtensionDeclaration:
		return context.Extended
	default:
		return nil
	}
}

// ContainingSourceFile walks the context tree upwards
// to the source file the context is declared in.
func ContainingSourceFile(context DeclarationContext) *SourceFile {
	for context != nil {
		if sourceFile, ok := context.(*SourceFile); ok {
			return sourceFile
		}
		context = context.ContextParent()
	}
	return nil
}

// IsClassOrClassExtensionContext returns true if the context
// is a class declaration or an extension of a class.
func IsClassOrClassExtensionContext(context DeclarationContext) bool {
	nominal := ContainingNominalType(context)
	return nominal != nil && nominal.IsClass()
}

// IsProtocolExtensionContext returns true if the context
// is an extension of a protocol.
func IsProtocolExtensionContext(context DeclarationContext) bool {
	extension, ok := context.(*ExtensionDeclaration)
	return ok && extension.IsProtocolExtension()
}
