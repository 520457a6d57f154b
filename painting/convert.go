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
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
)

// Opts configures Convert.
type Opts struct {
	// Bed1Path and Bed2Path are the two paintings, drawn as layers 1 and 2.
	// The first line of Bed1Path is copied to the output as its header.
	Bed1Path string
	Bed2Path string
	// ColorsPath is the ancestry->color table, see NewColorTable.
	ColorsPath string
	// UnknownColor is used for UNK and for any ancestry missing from the
	// color table.
	UnknownColor string
	// Feature, if non-nil, is highlighted on both layers.
	Feature *Feature
	// OutPath is the output BED.  A ".gz" suffix selects BGZF compression.
	OutPath string
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	UnknownColor: "#808080",
}

// Validate checks that all required paths are set.
func (o *Opts) Validate() error {
	for _, p := range []struct{ flag, val string }{
		{"bed1", o.Bed1Path},
		{"bed2", o.Bed2Path},
		{"colors", o.ColorsPath},
		{"out", o.OutPath},
	} {
		if p.val == "" {
			return errors.E(errors.Invalid, "-"+p.flag+" must be set")
		}
	}
	if o.Feature != nil {
		if _, err := ParseFeatureKind(string(o.Feature.Kind)); err != nil {
			return err
		}
	}
	return nil
}

// Document is a complete output BED: one header line followed by records.
type Document struct {
	Header  string
	Records []Record
}

// Build reads both paintings and the color table and assembles the sorted
// output document.  Nothing is written.
func Build(ctx context.Context, opts Opts) (doc Document, err error) {
	var colors *ColorTable
	if colors, err = ReadColorTable(ctx, opts.ColorsPath, opts.UnknownColor); err != nil {
		return
	}
	inputs := []struct {
		path       string
		layer      Layer
		takeHeader bool
	}{
		{opts.Bed1Path, Layer1, true},
		{opts.Bed2Path, Layer2, false},
	}
	for _, in := range inputs {
		var p Painting
		err = readPath(ctx, in.path, func(r io.Reader) (err error) {
			p, err = ParsePainting(r, in.path, in.layer, colors, in.takeHeader)
			return
		})
		if err != nil {
			return
		}
		if in.takeHeader {
			doc.Header = p.Header
		}
		log.Debug.Printf("%s: %d layer-%v record(s)", in.path, len(p.Records), in.layer)
		doc.Records = append(doc.Records, p.Records...)
	}
	if opts.Feature != nil {
		doc.Records = append(doc.Records, opts.Feature.Records()...)
	}
	SortRecords(doc.Records)
	return
}

// Write emits doc as TSV.
func (doc Document) Write(w io.Writer) (err error) {
	out := tsv.NewWriter(w)
	out.WriteString(doc.Header)
	if err = out.EndLine(); err != nil {
		return
	}
	for _, rec := range doc.Records {
		out.WriteString(rec.Chrom)
		out.WriteString(rec.Start)
		out.WriteString(rec.End)
		out.WriteString(string(rec.Geom))
		out.WriteString(rec.Color)
		out.WriteString(rec.Layer.String())
		if err = out.EndLine(); err != nil {
			return
		}
	}
	return out.Flush()
}

// Convert builds the layered BED described by opts and writes it to
// opts.OutPath.  The inputs are fully read before the output is created, so a
// malformed input leaves no output behind.
func Convert(ctx context.Context, opts Opts) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	doc, err := Build(ctx, opts)
	if err != nil {
		return err
	}
	if err = writePath(ctx, opts.OutPath, doc.Write); err != nil {
		return err
	}
	if opts.Feature != nil {
		log.Printf("%s: wrote %d record(s), feature %v at %d:%d-%d",
			opts.OutPath, len(doc.Records), opts.Feature.Kind, opts.Feature.Chrom, opts.Feature.Start, opts.Feature.End)
	} else {
		log.Printf("%s: wrote %d record(s)", opts.OutPath, len(doc.Records))
	}
	return nil
}
