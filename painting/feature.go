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
	"fmt"
	"strconv"

	"github.com/grailbio/base/errors"
)

// FeatureKind selects how a highlighted feature is drawn.
type FeatureKind string

const (
	// FeatureLine draws the feature as a dashed line.
	FeatureLine FeatureKind = "line"
	// FeatureTriangle draws a triangle marker at the feature.
	FeatureTriangle FeatureKind = "triangle"
)

const featureColor = "#000000"

// ParseFeatureKind converts a -feature-type flag value.
func ParseFeatureKind(s string) (FeatureKind, error) {
	switch k := FeatureKind(s); k {
	case FeatureLine, FeatureTriangle:
		return k, nil
	}
	return "", errors.E(errors.Invalid,
		fmt.Sprintf("unknown feature type %q, must be %q or %q", s, FeatureLine, FeatureTriangle))
}

// Geom returns the geometry column value for k.
func (k FeatureKind) Geom() Geom { return Geom("geom_" + string(k)) }

// Feature is a region (usually a gene) to highlight on both layers.  The
// coordinates are not checked; a negative start or an end before the start is
// written as given.
type Feature struct {
	Chrom int
	Start int
	End   int
	Kind  FeatureKind
}

// Records returns the pair of black records, one per layer, that mark f.
func (f Feature) Records() []Record {
	chrom := strconv.Itoa(f.Chrom)
	start := strconv.Itoa(f.Start)
	end := strconv.Itoa(f.End)
	recs := make([]Record, 0, 2)
	for _, layer := range []Layer{Layer1, Layer2} {
		recs = append(recs, Record{
			Chrom: chrom,
			Start: start,
			End:   end,
			Geom:  f.Kind.Geom(),
			Color: featureColor,
			Layer: layer,
			Pos:   f.Start,
		})
	}
	return recs
}
