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

	"github.com/tienex/swift/errors"
)

// SourceFileKind distinguishes ordinary library source from lowered
// intermediate source, which feeds the semantic analyzer pre-resolved
// declarations that must not get implicit members.
type SourceFileKind uint8

const (
	SourceFileKindLibrary SourceFileKind = iota
	SourceFileKindIntermediate
)

func (k SourceFileKind) Name() string {
	switch k {
	case SourceFileKindLibrary:
		return "library"
	case SourceFileKindIntermediate:
		return "intermediate"
	}

	panic(errors.NewUnreachableError())
}

// SourceFile is the root declaration context of a module's source.
type SourceFile struct {
	ModuleName string
	Kind       SourceFileKind
	Members    *Members
}

var _ DeclarationContext = &SourceFile{}

func NewSourceFile(moduleName string, kind SourceFileKind, members *Members) *SourceFile {
	if members == nil {
		members = NewEmptyMembers()
	}
	return &SourceFile{
		ModuleName: moduleName,
		Kind:       kind,
		Members:    members,
	}
}

func (*SourceFile) isDeclarationContext() {}

func (f *SourceFile) ContextParent() DeclarationContext {
	return nil
}

func (f *SourceFile) ContextMembers() *Members {
	return f.Members
}

func (f *SourceFile) IsTypeContext() bool {
	return false
}

func (f *SourceFile) IsLocalContext() bool {
	return false
}

func (f *SourceFile) Walk(walkChild func(Element)) {
	f.Members.Walk(walkChild)
}

func (f *SourceFile) MarshalJSON() ([]byte, error) {
	type Alias SourceFile
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "SourceFile",
		Alias: (*Alias)(f),
	})
}
