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
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Layer identifies which of the two input tracks a record belongs to.
type Layer uint8

const (
	// Layer1 records come from the first painting.
	Layer1 Layer = 1
	// Layer2 records come from the second painting.
	Layer2 Layer = 2
)

func (l Layer) String() string { return strconv.Itoa(int(l)) }

// Geom is the rendering hint written in the fourth output column.  It is
// interpreted by the plotting tool only.
type Geom string

const (
	GeomRect     Geom = "geom_rect"
	GeomLine     Geom = "geom_line"
	GeomTriangle Geom = "geom_triangle"
)

// Record is one line of the output BED.
type Record struct {
	// Chrom has any "chr" prefix removed.
	Chrom string
	// Start and End are copied verbatim from the input.
	Start, End string
	Geom       Geom
	Color      string
	Layer      Layer
	// Pos is Start parsed as an integer.  Records are ordered by it.
	Pos int
}

// NormalizeChrom strips a leading "chr" from a chromosome name.
func NormalizeChrom(chrom string) string {
	return strings.TrimPrefix(chrom, "chr")
}

// Painting is the parsed content of one ancestry-painting BED.
type Painting struct {
	// Header is the first line of the input, set only when ParsePainting was
	// asked to take it.
	Header  string
	Records []Record
}

// ParsePainting reads an ancestry-painting BED and annotates every
// non-comment line with its color and layer.  Lines must have at least four
// tab-separated fields: chrom, start, end, ancestry; anything after the
// ancestry is ignored.  If takeHeader is set the first line is stored in
// Header as-is, whether or not it starts with '#'.  name is only used in
// error messages.
func ParsePainting(r io.Reader, name string, layer Layer, colors *ColorTable, takeHeader bool) (p Painting, err error) {
	scanner := bufio.NewScanner(r)
	lineIdx := 0
	if takeHeader && scanner.Scan() {
		lineIdx++
		p.Header = strings.TrimSpace(scanner.Text())
	}
	for scanner.Scan() {
		lineIdx++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(strings.TrimSpace(line), "\t")
		if len(fields) < 4 {
			err = errors.E(errors.Invalid,
				fmt.Sprintf("%s:%d: expected at least 4 tab-separated fields, found %d", name, lineIdx, len(fields)))
			return
		}
		rec := Record{
			Chrom: NormalizeChrom(fields[0]),
			Start: fields[1],
			End:   fields[2],
			Geom:  GeomRect,
			Color: colors.Lookup(fields[3]),
			Layer: layer,
		}
		if rec.Pos, err = strconv.Atoi(rec.Start); err != nil {
			err = errors.E(errors.Invalid, fmt.Sprintf("%s:%d: non-numeric start %q", name, lineIdx, rec.Start))
			return
		}
		p.Records = append(p.Records, rec)
	}
	if err = scanner.Err(); err != nil {
		err = errors.E(err, name)
	}
	return
}

// SortRecords sorts recs by start position.  Records with equal starts keep
// their relative order.
func SortRecords(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Pos < recs[j].Pos
	})
}
