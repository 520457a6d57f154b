// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package painting

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// UnknownAncestry is the label painting tools use for regions they could not
// assign.  It always maps to the table's unknown color.
const UnknownAncestry = "UNK"

// ColorTable maps ancestry labels to the colors they are drawn with.  It is
// immutable once built.
type ColorTable struct {
	colors  map[string]string
	unknown string
}

// NewColorTable parses a color table from r.  Each line must hold exactly two
// whitespace-separated tokens, an ancestry label and a color.  name is only
// used in error messages.  unknown becomes the color of UnknownAncestry and of
// every label missing from the table; it overrides any UNK line in r.
func NewColorTable(r io.Reader, name string, unknown string) (*ColorTable, error) {
	t := &ColorTable{
		colors:  map[string]string{},
		unknown: unknown,
	}
	scanner := bufio.NewScanner(r)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) != 2 {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("%s:%d: expected 2 tokens (ancestry, color), found %d", name, lineIdx, len(tokens)))
		}
		t.colors[tokens[0]] = tokens[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, name)
	}
	t.colors[UnknownAncestry] = unknown
	return t, nil
}

// ReadColorTable is a wrapper for NewColorTable that takes a path instead of
// an io.Reader.
func ReadColorTable(ctx context.Context, path string, unknown string) (t *ColorTable, err error) {
	err = readPath(ctx, path, func(r io.Reader) (err error) {
		t, err = NewColorTable(r, path, unknown)
		return
	})
	if err != nil {
		return nil, err
	}
	log.Debug.Printf("%s: loaded %d ancestry colors", path, t.Len())
	return t, nil
}

// Lookup returns the color for the given ancestry label, or the unknown color
// if the label is not in the table.
func (t *ColorTable) Lookup(ancestry string) string {
	if c, ok := t.colors[ancestry]; ok {
		return c
	}
	return t.unknown
}

// Unknown returns the color used for unassigned regions.
func (t *ColorTable) Unknown() string { return t.unknown }

// Len returns the number of labels in the table, UnknownAncestry included.
func (t *ColorTable) Len() int { return len(t.colors) }
