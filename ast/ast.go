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

// Package ast contains the AST nodes of the front end.
// All nodes implement the Element interface,
// so have position information and can be traversed using Walk.
// Most nodes also implement the json.Marshaler interface,
// so can be serialized to a standardized/stable JSON format.
//
// Declarations synthesized by the sema package are ordinary nodes:
// from the perspective of later phases they are indistinguishable
// from parsed declarations, except for their implicit flag.
package ast

// Element is the interface implemented by all AST nodes.
type Element interface {
	HasPosition
	Walk(walkChild func(Element))
}
