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
package painting_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/bgzf"
	"github.com/grailbio/lap/painting"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
)

const (
	testColors = "AFR #FF0000\nEUR #0000FF\n"
	testBed1   = "#chrom\tstart\tend\tanc\nchr1\t100\t200\tAFR\n"
	testBed2   = "chr1\t50\t150\tEUR\n"
)

func writeTestFile(t *testing.T, dir, name, data string) string {
	path := filepath.Join(dir, name)
	assert.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))
	return path
}

func testOpts(t *testing.T, dir, bed1, bed2 string) painting.Opts {
	opts := painting.DefaultOpts
	opts.ColorsPath = writeTestFile(t, dir, "colors.txt", testColors)
	opts.Bed1Path = writeTestFile(t, dir, "hap1.bed", bed1)
	opts.Bed2Path = writeTestFile(t, dir, "hap2.bed", bed2)
	opts.OutPath = filepath.Join(dir, "out.bed")
	return opts
}

func readOutput(t *testing.T, path string) string {
	data, err := ioutil.ReadFile(path)
	assert.NoError(t, err)
	return string(data)
}

func TestConvert(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	opts := testOpts(t, tmpdir, testBed1, testBed2)
	assert.NoError(t, painting.Convert(ctx, opts))
	expect.EQ(t, readOutput(t, opts.OutPath),
		"#chrom\tstart\tend\tanc\n"+
			"1\t50\t150\tgeom_rect\t#0000FF\t2\n"+
			"1\t100\t200\tgeom_rect\t#FF0000\t1\n")
}

func TestConvertWithFeature(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	opts := testOpts(t, tmpdir, testBed1, testBed2)
	opts.Feature = &painting.Feature{Chrom: 1, Start: 120, End: 130, Kind: painting.FeatureTriangle}
	assert.NoError(t, painting.Convert(ctx, opts))
	expect.EQ(t, readOutput(t, opts.OutPath),
		"#chrom\tstart\tend\tanc\n"+
			"1\t50\t150\tgeom_rect\t#0000FF\t2\n"+
			"1\t100\t200\tgeom_rect\t#FF0000\t1\n"+
			"1\t120\t130\tgeom_triangle\t#000000\t1\n"+
			"1\t120\t130\tgeom_triangle\t#000000\t2\n")
}

func TestConvertSortsNumerically(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	opts := testOpts(t, tmpdir, testBed1, "chr1\t9\t99\tEUR\n")
	opts.Feature = &painting.Feature{Chrom: 1, Start: 10, End: 11, Kind: painting.FeatureLine}
	assert.NoError(t, painting.Convert(ctx, opts))
	expect.EQ(t, readOutput(t, opts.OutPath),
		"#chrom\tstart\tend\tanc\n"+
			"1\t9\t99\tgeom_rect\t#0000FF\t2\n"+
			"1\t10\t11\tgeom_line\t#000000\t1\n"+
			"1\t10\t11\tgeom_line\t#000000\t2\n"+
			"1\t100\t200\tgeom_rect\t#FF0000\t1\n")
}

func TestBuild(t *testing.T) {
	ctx := vcontext.Background()
	opts := painting.DefaultOpts
	opts.ColorsPath = "testdata/colors.txt"
	opts.Bed1Path = "testdata/hap1.bed"
	opts.Bed2Path = "testdata/hap2.bed"
	doc, err := painting.Build(ctx, opts)
	assert.NoError(t, err)
	expect.EQ(t, doc.Header, "#chrom\tstart\tend\tanc")
	// Three body lines in hap1, two in hap2.
	assert.EQ(t, len(doc.Records), 5)

	var buf bytes.Buffer
	assert.NoError(t, doc.Write(&buf))
	expect.EQ(t, buf.String(),
		"#chrom\tstart\tend\tanc\n"+
			"1\t9\t50\tgeom_rect\t#808080\t1\n"+
			"1\t9\t40\tgeom_rect\t#808080\t2\n"+
			"1\t50\t150\tgeom_rect\t#0000FF\t2\n"+
			"1\t100\t200\tgeom_rect\t#FF0000\t1\n"+
			"2\t300\t400\tgeom_rect\t#00FF00\t1\n")

	opts.Feature = &painting.Feature{Chrom: 2, Start: 1, End: 2, Kind: painting.FeatureLine}
	doc, err = painting.Build(ctx, opts)
	assert.NoError(t, err)
	assert.EQ(t, len(doc.Records), 7)
	for i := 1; i < len(doc.Records); i++ {
		expect.True(t, doc.Records[i-1].Pos <= doc.Records[i].Pos)
	}
}

func TestConvertUnknownColor(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	opts := testOpts(t, tmpdir, testBed1, "chr2\t1\t5\tUNK\nchr2\t5\t9\tNAT\n")
	opts.UnknownColor = "#AAAAAA"
	assert.NoError(t, painting.Convert(ctx, opts))
	expect.EQ(t, readOutput(t, opts.OutPath),
		"#chrom\tstart\tend\tanc\n"+
			"2\t1\t5\tgeom_rect\t#AAAAAA\t2\n"+
			"2\t5\t9\tgeom_rect\t#AAAAAA\t2\n"+
			"1\t100\t200\tgeom_rect\t#FF0000\t1\n")
}

func TestConvertMalformedLeavesNoOutput(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	opts := testOpts(t, tmpdir, testBed1, "chr1\t50\t150\n")
	err := painting.Convert(ctx, opts)
	assert.NotNil(t, err)
	expect.True(t, errors.Is(errors.Invalid, err))
	expect.HasSubstr(t, err.Error(), "hap2.bed:1")
	_, err = os.Stat(opts.OutPath)
	expect.True(t, os.IsNotExist(err))
}

func TestConvertMissingInput(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	opts := testOpts(t, tmpdir, testBed1, testBed2)
	opts.Bed2Path = filepath.Join(tmpdir, "missing.bed")
	assert.NotNil(t, painting.Convert(ctx, opts))
	_, err := os.Stat(opts.OutPath)
	expect.True(t, os.IsNotExist(err))
}

func TestOptsValidate(t *testing.T) {
	opts := painting.DefaultOpts
	opts.Bed1Path = "a.bed"
	opts.Bed2Path = "b.bed"
	opts.ColorsPath = "colors.txt"
	err := opts.Validate()
	assert.NotNil(t, err)
	expect.HasSubstr(t, err.Error(), "-out must be set")

	opts.OutPath = "out.bed"
	assert.NoError(t, opts.Validate())

	opts.Feature = &painting.Feature{Chrom: 1, Start: 1, End: 2, Kind: "circle"}
	expect.True(t, errors.Is(errors.Invalid, opts.Validate()))
}

func TestConvertCompressed(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	opts := testOpts(t, tmpdir, testBed1, testBed2)
	var gzBuf bytes.Buffer
	gz := gzip.NewWriter(&gzBuf)
	_, err := gz.Write([]byte(testBed2))
	assert.NoError(t, err)
	assert.NoError(t, gz.Close())
	opts.Bed2Path = writeTestFile(t, tmpdir, "hap2.bed.gz", gzBuf.String())
	opts.OutPath = filepath.Join(tmpdir, "out.bed.gz")
	assert.NoError(t, painting.Convert(ctx, opts))

	in, err := os.Open(opts.OutPath)
	assert.NoError(t, err)
	defer in.Close()
	r, err := bgzf.NewReader(in, 1)
	assert.NoError(t, err)
	data, err := ioutil.ReadAll(r)
	assert.NoError(t, err)
	expect.EQ(t, string(data),
		"#chrom\tstart\tend\tanc\n"+
			"1\t50\t150\tgeom_rect\t#0000FF\t2\n"+
			"1\t100\t200\tgeom_rect\t#FF0000\t1\n")
	expect.False(t, strings.Contains(string(data), "chr1"))
}
