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

	"github.com/turbolent/prettier"
)

// Block

type Block struct {
	Statements []Statement
	Range
}

var _ Element = &Block{}

func NewBlock(statements []Statement, blockRange Range) *Block {
	return &Block{
		Statements: statements,
		Range:      blockRange,
	}
}

func NewImplicitBlock(statements ...Statement) *Block {
	return &Block{Statements: statements}
}

func (b *Block) IsEmpty() bool {
	return len(b.Statements) == 0
}

func (b *Block) Walk(walkChild func(Element)) {
	for _, statement := range b.Statements {
		walkChild(statement)
	}
}

// InlineDoc renders the block's statements separated by semicolons,
// without the surrounding braces.
func (b *Block) InlineDoc() prettier.Doc {
	doc := make(prettier.Concat, 0, len(b.Statements)*2)
	for i, statement := range b.Statements {
		if i > 0 {
			doc = append(doc, prettier.Text("; "))
		}
		if hasDoc, ok := statement.(HasDoc); ok {
			doc = append(doc, hasDoc.Doc())
		}
	}
	return doc
}

func (b *Block) MarshalJSON() ([]byte, error) {
	type Alias Block
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "Block",
		Alias: (*Alias)(b),
	})
}

// FunctionBlock

type FunctionBlock struct {
	Block *Block
}

var _ Element = &FunctionBlock{}

func NewFunctionBlock(block *Block) *FunctionBlock {
	return &FunctionBlock{Block: block}
}

func (b *FunctionBlock) Walk(walkChild func(Element)) {
	walkChild(b.Block)
}

func (b *FunctionBlock) IsEmpty() bool {
	return b == nil || b.Block.IsEmpty()
}

func (b *FunctionBlock) StartPosition() Position {
	return b.Block.StartPosition()
}

func (b *FunctionBlock) EndPosition() Position {
	return b.Block.EndPosition()
}

func (b *FunctionBlock) MarshalJSON() ([]byte, error) {
	type Alias FunctionBlock
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "FunctionBlock",
		Range: NewRangeFromPositioned(b),
		Alias: (*Alias)(b),
	})
}
