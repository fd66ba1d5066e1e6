// Copyright 2025 greenBin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package codec converts between the on-disk XML documents and the record
// types in pkg/models, one codec per record kind.
//
// Each document is a single wrapper element holding zero or more item
// elements. Item identity is an attribute; scalar fields are attributes or
// nested elements; structured fields (coordinates, worker lists, attendance)
// are nested item lists.
//
// Decoding is tolerant: an absent nested list is an empty list, a single
// nested item is a one-element list, and missing optional fields default to
// their zero values. Encoding always emits a well-formed document, including
// the empty-but-present wrapper for an empty collection. For any list of
// valid records, Decode(Encode(records)) reproduces the list element for
// element.
package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Codec converts one record kind between its document and struct forms.
type Codec[T any] interface {
	// Kind returns the collection name, e.g. "vehicles".
	Kind() string
	// Decode parses a whole collection document. Empty input decodes to an
	// empty list.
	Decode(raw []byte) ([]T, error)
	// Encode renders the whole collection back into a document.
	Encode(records []T) ([]byte, error)
}

// isEmptyDocument reports whether raw contains no content worth parsing.
func isEmptyDocument(raw []byte) bool {
	return strings.TrimSpace(string(raw)) == ""
}

// marshalDocument renders a wrapper struct as an indented XML document with
// the standard header.
func marshalDocument(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// unmarshalDocument parses a document into a wrapper struct.
func unmarshalDocument(raw []byte, doc any) error {
	if err := xml.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return nil
}
