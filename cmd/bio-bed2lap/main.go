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
package main

// See doc.go for documentation.

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/lap/painting"
)

// Collection of options set via cmdline flags.
type bed2lapFlags struct {
	bed1        *string
	bed2        *string
	colors      *string
	unknown     *string
	fromBP      *int
	toBP        *int
	chrom       *int
	featureType *string
	out         *string
}

func newFlags(fs *flag.FlagSet) *bed2lapFlags {
	return &bed2lapFlags{
		bed1:        fs.String("bed1", "", "First BED file of the RFMix2 painting (layer 1); its first line is copied as the output header"),
		bed2:        fs.String("bed2", "", "Second BED file of the RFMix2 painting (layer 2)"),
		colors:      fs.String("colors", "", "File of 'ancestry color' lines"),
		unknown:     fs.String("unknown", painting.DefaultOpts.UnknownColor, "Color for unknown (UNK or unlisted) ancestry"),
		fromBP:      fs.Int("from-bp", 0, "Start position (in bp) of the gene to highlight; requires -to-bp and -chr"),
		toBP:        fs.Int("to-bp", 0, "End position (in bp) of the gene to highlight; requires -from-bp and -chr"),
		chrom:       fs.Int("chr", 0, "Chromosome number for -from-bp and -to-bp"),
		featureType: fs.String("feature-type", string(painting.FeatureLine), "Feature marker: 'line' for a dashed line or 'triangle' for a triangle"),
		out:         fs.String("out", "", "Output BED path; a .gz suffix writes BGZF"),
	}
}

// opts converts parsed flags into painting.Opts.  fs must be the FlagSet the
// flags were registered on; it tells which feature flags were given.
func (f *bed2lapFlags) opts(fs *flag.FlagSet) (painting.Opts, error) {
	opts := painting.DefaultOpts
	opts.Bed1Path = *f.bed1
	opts.Bed2Path = *f.bed2
	opts.ColorsPath = *f.colors
	opts.UnknownColor = *f.unknown
	opts.OutPath = *f.out

	kind, err := painting.ParseFeatureKind(*f.featureType)
	if err != nil {
		return opts, err
	}
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	switch n := btoi(set["chr"]) + btoi(set["from-bp"]) + btoi(set["to-bp"]); n {
	case 0:
	case 3:
		opts.Feature = &painting.Feature{
			Chrom: *f.chrom,
			Start: *f.fromBP,
			End:   *f.toBP,
			Kind:  kind,
		}
	default:
		return opts, errors.E(errors.Invalid, "-chr, -from-bp and -to-bp must be given together")
	}
	return opts, opts.Validate()
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

func bed2lapUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -bed1 hap1.bed -bed2 hap2.bed -colors colors.txt -out out.bed [OPTIONS]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flags := newFlags(flag.CommandLine)
	flag.Usage = bed2lapUsage
	shutdown := grail.Init()
	defer shutdown()

	opts, err := flags.opts(flag.CommandLine)
	if err != nil {
		flag.Usage()
		log.Fatal(err)
	}
	if err := painting.Convert(vcontext.Background(), opts); err != nil {
		log.Fatal(err)
	}
}
