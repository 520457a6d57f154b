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

/*Package painting turns a pair of local-ancestry painting BEDs (one per
  haplotype, as emitted by RFMix2 and similar tools) into a single layered BED
  for karyogram plotting.

  Each input line "chrom start end ancestry ..." becomes
  "chrom start end geom_rect color layer", where the color comes from a
  user-supplied ancestry->color table and layer is 1 for the first input and 2
  for the second.  An optional highlighted feature (a gene, say) can be added
  to both layers.  All records are sorted by start position before being
  written, so the whole painting is held in memory.
*/
package painting
