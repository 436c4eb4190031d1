package synthiso_cli

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pappasjfed/isomd5sum/pkg/sizeclass"
)

func captureStdout(t *testing.T) (*bytes.Buffer, func()) {
	buf := bytes.NewBuffer(nil)
	prev, prevNoColor := stdout, color.NoColor
	stdout, color.NoColor = buf, true
	return buf, func() { stdout, color.NoColor = prev, prevNoColor }
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "synthiso_cli")
	require.Nil(t, err)
	return dir
}

func run(t *testing.T, args ...string) error {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("synthiso"))
	require.Nil(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&cli.Globals)
}

func TestGenerate(t *testing.T) {
	out, restore := captureStdout(t)
	defer restore()

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	dst := filepath.Join(dir, "out.iso")
	metrics := filepath.Join(dir, "synthiso.prom")
	err := run(t, "generate", "-s", "tiny", "-o", dst, "--metrics-file", metrics)
	require.Nil(t, err)

	fi, err := os.Stat(dst)
	require.Nil(t, err)
	assert.EqualValues(t, 524288, fi.Size())

	assert.True(t, strings.HasPrefix(out.String(), "[OK] "+dst+": 524288 bytes, 256 sectors"), out.String())

	prom, err := ioutil.ReadFile(metrics)
	require.Nil(t, err)
	assert.Contains(t, string(prom), `synthiso_images_total{mode="dense"} 1`)
	assert.Contains(t, string(prom), "synthiso_last_image_logical_bytes 524288")
}

func TestGenerateByteCount(t *testing.T) {
	_, restore := captureStdout(t)
	defer restore()

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	dst := filepath.Join(dir, "out.iso")
	require.Nil(t, run(t, "generate", "--size", "40000", "--output", dst, "--no-sparse"))

	fi, err := os.Stat(dst)
	require.Nil(t, err)
	assert.EqualValues(t, 40960, fi.Size())
}

func TestGenerateDefaultOutput(t *testing.T) {
	_, restore := captureStdout(t)
	defer restore()

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	wd, err := os.Getwd()
	require.Nil(t, err)
	require.Nil(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.Nil(t, run(t, "generate", "-s", "small"))

	fi, err := os.Stat(filepath.Join(dir, "test_small.iso"))
	require.Nil(t, err)
	assert.EqualValues(t, 1048576, fi.Size())
}

func TestGenerateUnknownSize(t *testing.T) {
	_, restore := captureStdout(t)
	defer restore()

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	err := run(t, "generate", "-s", "floppy", "-o", filepath.Join(dir, "out.iso"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `unknown size "floppy"`)
	}

	entries, err := ioutil.ReadDir(dir)
	require.Nil(t, err)
	assert.Empty(t, entries, "no file may be created for an unknown size")
}

func TestGenerateUnwritable(t *testing.T) {
	_, restore := captureStdout(t)
	defer restore()

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	err := run(t, "generate", "-s", "tiny", "-o", filepath.Join(dir, "missing", "out.iso"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "creating")
	}
}

func TestInspect(t *testing.T) {
	out, restore := captureStdout(t)
	defer restore()

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	dst := filepath.Join(dir, "out.iso")
	require.Nil(t, run(t, "generate", "-s", "tiny", "-o", dst))
	out.Reset()

	require.Nil(t, run(t, "inspect", "-i", dst))

	var report inspection
	require.Nil(t, json.Unmarshal(out.Bytes(), &report))
	assert.EqualValues(t, 524288, report.Size)
	assert.True(t, report.ApplicationUseBlank)
	assert.EqualValues(t, 256, report.PrimaryVolumeDescriptor.VolumeSpaceSize)
	assert.Equal(t, "SYNTHETIC_TEST_ISO", report.PrimaryVolumeDescriptor.VolumeIdentifier)
}

func TestInspectRejects(t *testing.T) {
	_, restore := captureStdout(t)
	defer restore()

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	dst := filepath.Join(dir, "out.iso")
	require.Nil(t, run(t, "generate", "-s", "tiny", "-o", dst))

	// truncated images no longer match the declared volume space size
	require.Nil(t, os.Truncate(dst, 36864))
	err := run(t, "inspect", "-i", dst)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "does not match image length")
	}

	// a damaged terminator
	f, err := os.OpenFile(dst, os.O_WRONLY, 0)
	require.Nil(t, err)
	_, err = f.WriteAt([]byte{0}, 34816)
	require.Nil(t, err)
	require.Nil(t, f.Close())

	err = run(t, "inspect", "-i", dst)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "terminator")
	}

	err = run(t, "inspect", "-i", filepath.Join(dir, "missing.iso"))
	assert.Error(t, err)
}

func TestSizes(t *testing.T) {
	out, restore := captureStdout(t)
	defer restore()

	require.Nil(t, run(t, "sizes"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(sizeclass.All())+1)
	for i, name := range sizeclass.Names() {
		assert.True(t, strings.HasPrefix(lines[i+1], name+" "), lines[i+1])
	}
	assert.Contains(t, out.String(), "26843545600")
}

func TestVersion(t *testing.T) {
	out, restore := captureStdout(t)
	defer restore()

	prev := Version
	Version = "abc123"
	defer func() { Version = prev }()

	require.Nil(t, run(t, "version"))
	assert.Equal(t, "abc123\n", out.String())
}

func TestGlobalsLevel(t *testing.T) {
	for in, expected := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		ll, err := (&Globals{LogLevel: in}).Level()
		assert.Nil(t, err, in)
		assert.Equal(t, expected, ll, in)
	}

	_, err := (&Globals{LogLevel: "bogus"}).Level()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "invalid log level")
	}
}
