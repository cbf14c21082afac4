package optimize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediaslim/internal/toolrun"
)

func decodeOK(args []string) toolrun.Result { return writeOutput(args[1], jpegBytes) }
func encodeOK(args []string) toolrun.Result { return writeOutput(args[len(args)-1], webpBytes) }

func heicFixture(t *testing.T) (dir, src string) {
	t.Helper()
	dir = t.TempDir()
	src = filepath.Join(dir, "IMG_0001.heic")
	writeFile(t, src, heicBytes)
	return dir, src
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestConvertHEICSuccessLeavesOnlyWebP(t *testing.T) {
	dir, src := heicFixture(t)
	r := newFakeRunner().on("heif-convert", decodeOK).on("cwebp", encodeOK)

	res := testToolchain(r).ConvertHEIC(context.Background(), src)
	require.True(t, res.Converted(), "%+v", res)
	assert.Equal(t, filepath.Join(dir, "IMG_0001.webp"), res.WebPPath)
	assert.Equal(t, []string{"IMG_0001.webp"}, dirNames(t, dir))
}

func TestConvertHEICFailureRollsBack(t *testing.T) {
	cases := map[string]struct {
		decode, encode func([]string) toolrun.Result
		stage          string
		outcome        toolrun.Outcome
	}{
		"decode fails": {
			decode:  func(args []string) toolrun.Result { writeOutput(args[1], jpegBytes[:4]); return fail },
			stage:   "decode",
			outcome: toolrun.ToolFailure,
		},
		"decode times out": {
			decode:  func(args []string) toolrun.Result { writeOutput(args[1], jpegBytes); return timeout },
			stage:   "decode",
			outcome: toolrun.TimedOut,
		},
		"decode exits zero without output": {
			decode:  func([]string) toolrun.Result { return toolrun.Result{Outcome: toolrun.Success} },
			stage:   "decode",
			outcome: toolrun.ToolFailure,
		},
		"encode fails after partial write": {
			decode:  decodeOK,
			encode:  func(args []string) toolrun.Result { writeOutput(args[len(args)-1], webpBytes[:6]); return fail },
			stage:   "encode",
			outcome: toolrun.ToolFailure,
		},
		"encode times out": {
			decode:  decodeOK,
			encode:  func([]string) toolrun.Result { return timeout },
			stage:   "encode",
			outcome: toolrun.TimedOut,
		},
		"encode writes garbage": {
			decode:  decodeOK,
			encode:  func(args []string) toolrun.Result { return writeOutput(args[len(args)-1], []byte("not a webp at all")) },
			stage:   "encode",
			outcome: toolrun.ToolFailure,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			dir, src := heicFixture(t)
			r := newFakeRunner().on("heif-convert", tc.decode)
			if tc.encode != nil {
				r.on("cwebp", tc.encode)
			}

			res := testToolchain(r).ConvertHEIC(context.Background(), src)
			assert.False(t, res.Converted())
			assert.Equal(t, tc.stage, res.Stage)
			assert.Equal(t, tc.outcome, res.Outcome)
			assert.Equal(t, []string{"IMG_0001.heic"}, dirNames(t, dir))

			data, err := os.ReadFile(src)
			require.NoError(t, err)
			assert.Equal(t, heicBytes, data)
		})
	}
}

func TestConvertHEICDecodeFailureSkipsEncode(t *testing.T) {
	_, src := heicFixture(t)
	r := newFakeRunner().on("heif-convert", func([]string) toolrun.Result { return fail })

	testToolchain(r).ConvertHEIC(context.Background(), src)
	assert.False(t, r.called("cwebp"))
}

func TestConvertHEICRefusesExistingSibling(t *testing.T) {
	dir, src := heicFixture(t)
	existing := filepath.Join(dir, "IMG_0001.jpg")
	writeFile(t, existing, jpegBytes)
	r := newFakeRunner().on("heif-convert", decodeOK).on("cwebp", encodeOK)

	res := testToolchain(r).ConvertHEIC(context.Background(), src)
	assert.ErrorIs(t, res.Err, ErrOutputExists)
	assert.Equal(t, "preflight", res.Stage)
	assert.Empty(t, r.calls)
	assert.ElementsMatch(t, []string{"IMG_0001.heic", "IMG_0001.jpg"}, dirNames(t, dir))
}
