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

import "fmt"

// Position defines a row/column within a source file,
// including the byte offset.
//
// Synthesized (implicit) declarations carry the zero Position.
type Position struct {
	// offset, starting at 0
	Offset int
	// line number, starting at 1
	Line int
	// column number, starting at 0 (byte count)
	Column int
}

func (position Position) Shifted(length int) Position {
	return Position{
		Offset: position.Offset + length,
		Line:   position.Line,
		Column: position.Column + length,
	}
}

func (position Position) String() string {
	return fmt.Sprintf("%d(%d:%d)", position.Offset, position.Line, position.Column)
}

func (position Position) Compare(other Position) int {
	switch {
	case position.Offset < other.Offset:
		return -1
	case position.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

// HasPosition is implemented by all elements
// that occupy a range in a source file.
type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

// Range

type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func (r Range) StartPosition() Position {
	return r.StartPos
}

func (r Range) EndPosition() Position {
	return r.EndPos
}

// NewRangeFromPositioned constructs a Range
// from the positions of the given element.
func NewRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(),
	}
}
