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

package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/errors"
)

const errorPrefix = "error"
const notePrefix = "note"
const excerptArrow = "--> "
const excerptDots = "... "

func FormatErrorMessage(prefix string, message string, useColor bool) string {
	var builder strings.Builder
	if useColor {
		builder.WriteString(colorizeError(prefix))
		builder.WriteString(": ")
		builder.WriteString(colorizeMessage(message))
	} else {
		builder.WriteString(prefix)
		builder.WriteString(": ")
		builder.WriteString(message)
	}
	builder.WriteString("\n")
	return builder.String()
}

func colorizeError(message string) string {
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

func colorizeMessage(message string) string {
	return aurora.Bold(message).String()
}

func colorizeMeta(meta string) string {
	return aurora.Blue(meta).String()
}

type excerpt struct {
	startPos *ast.Position
	endPos   *ast.Position
	message  string
	isError  bool
}

func newExcerpt(obj any, message string, isError bool) *excerpt {
	result := &excerpt{
		message: message,
		isError: isError,
	}
	if positioned, hasPosition := obj.(ast.HasPosition); hasPosition {
		startPos := positioned.StartPosition()
		result.startPos = &startPos
		endPos := positioned.EndPosition()
		result.endPos = &endPos
	}
	return result
}

// ErrorPrettyPrinter prints errors with their source excerpts,
// secondary messages, and notes.
type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) error {
	_, err := p.writer.Write([]byte(str))
	return err
}

// PrettyPrintError writes the error, its child errors, and its notes,
// each with an excerpt from the given source code.
func (p ErrorPrettyPrinter) PrettyPrintError(err error, filename string, code []byte) error {
	i := 0
	var printError func(err error) error
	printError = func(err error) error {
		if parent, ok := err.(errors.ParentError); ok {
			for _, childErr := range parent.ChildErrors() {
				if printErr := printError(childErr); printErr != nil {
					return printErr
				}
			}
			return nil
		}

		if i > 0 {
			if writeErr := p.writeString("\n"); writeErr != nil {
				return writeErr
			}
		}
		i++
		return p.prettyPrintError(err, filename, code)
	}
	return printError(err)
}

func (p ErrorPrettyPrinter) prettyPrintError(err error, filename string, code []byte) error {
	if writeErr := p.writeString(FormatErrorMessage(errorPrefix, err.Error(), p.useColor)); writeErr != nil {
		return writeErr
	}

	message := ""
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		message = secondaryError.SecondaryError()
	}

	excerpts := []*excerpt{
		newExcerpt(err, message, true),
	}

	if errorNotes, ok := err.(errors.ErrorNotes); ok {
		for _, errorNote := range errorNotes.ErrorNotes() {
			excerpts = append(
				excerpts,
				newExcerpt(errorNote, errorNote.Message(), false),
			)
		}
	}

	return p.writeCodeExcerpts(excerpts, filename, code)
}

func (p ErrorPrettyPrinter) writeCodeExcerpts(
	excerpts []*excerpt,
	filename string,
	code []byte,
) error {
	lines := strings.Split(string(code), "\n")

	var lastLineNumber int
	for excerptIndex, exc := range excerpts {

		lineNumberString := ""
		lineNumberLength := 0
		if exc.startPos != nil {
			plainLineNumberString := strconv.Itoa(exc.startPos.Line)
			lineNumberLength = len(plainLineNumberString)
			lineNumberString = plainLineNumberString
			if p.useColor {
				lineNumberString = colorizeMeta(lineNumberString)
			}
		}

		indent := strings.Repeat(" ", lineNumberLength)

		// location, e.g. ` --> test.swift:2:9`
		if excerptIndex == 0 {
			arrow := excerptArrow
			if p.useColor {
				arrow = colorizeMeta(arrow)
			}
			location := filename
			if exc.startPos != nil {
				location = fmt.Sprintf(
					"%s:%d:%d",
					filename,
					exc.startPos.Line,
					exc.startPos.Column,
				)
			}
			if err := p.writeString(fmt.Sprintf("%s%s%s\n", indent, arrow, location)); err != nil {
				return err
			}
		} else if exc.startPos != nil && exc.startPos.Line > lastLineNumber+1 {
			dots := excerptDots
			if p.useColor {
				dots = colorizeMeta(dots)
			}
			if err := p.writeString(fmt.Sprintf("%s%s\n", indent, dots)); err != nil {
				return err
			}
		}

		separator := " | "
		if p.useColor {
			separator = colorizeMeta(separator)
		}

		if exc.startPos == nil ||
			exc.startPos.Line < 1 ||
			exc.startPos.Line > len(lines) {

			if exc.message != "" {
				if err := p.writeString(exc.message + "\n"); err != nil {
					return err
				}
			}
			continue
		}

		line := lines[exc.startPos.Line-1]
		lastLineNumber = exc.startPos.Line

		// code line with number, e.g. `3 | var x = 1`
		if err := p.writeString(fmt.Sprintf(
			"%s%s\n%s%s%s\n",
			indent, separator,
			lineNumberString, separator, line,
		)); err != nil {
			return err
		}

		// underline, e.g. `  |     ^^^^^`
		startColumn := exc.startPos.Column
		if startColumn > len(line) {
			startColumn = len(line)
		}
		columns := 1
		if exc.endPos != nil && exc.endPos.Line == exc.startPos.Line {
			endColumn := exc.endPos.Column
			if endColumn >= len(line) {
				endColumn = len(line) - 1
			}
			if endColumn >= startColumn {
				columns = uniseg.GraphemeClusterCount(
					line[startColumn : endColumn+1],
				)
			}
		}
		if columns < 1 {
			columns = 1
		}

		underline := strings.Repeat("^", columns)
		if p.useColor {
			if exc.isError {
				underline = colorizeError(underline)
			} else {
				underline = colorizeMessage(underline)
			}
		}
		if exc.message != "" {
			underline += " " + exc.message
		}

		spaces := uniseg.GraphemeClusterCount(line[:startColumn])
		if err := p.writeString(fmt.Sprintf(
			"%s%s%s%s\n",
			indent, separator,
			strings.Repeat(" ", spaces),
			underline,
		)); err != nil {
			return err
		}
	}
	return nil
}
