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

/*
bio-bed2lap merges the two per-haplotype BED files of an RFMix2 ancestry
painting into one colored, layered BED suitable for drawing karyograms.

Each painting line "chrom start end ancestry" becomes
"chrom start end geom_rect color layer", with the "chr" prefix dropped from
chrom, color looked up in the -colors table, and layer 1 for -bed1 and 2 for
-bed2.  The output is sorted by start position and begins with the first line
of -bed1.

The -colors file has one "ancestry color" pair per line:

    AFR #FF0000
    EUR #0000FF

UNK, and any ancestry not in the table, is drawn in the -unknown color.

A gene or other feature can be marked on both tracks with -chr, -from-bp and
-to-bp (all three or none), drawn as a black line or triangle per
-feature-type.

Inputs ending in .gz are decompressed; an output ending in .gz is written as
BGZF.

Sample usage:
bio-bed2lap \
    --bed1 sample.0.bed \
    --bed2 sample.1.bed \
    --colors colors.txt \
    --chr 15 --from-bp 28000021 --to-bp 28344504 --feature-type triangle \
    --out sample.lap.bed
*/
package main
