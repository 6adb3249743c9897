package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out)
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"rangesum"}, args...))
	return out.String(), err
}

func TestCountFromStdin(t *testing.T) {
	out, err := runApp(t, `{"nums": [-2, 5, -1], "lower": -2, "upper": 2}`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestCountFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nums": [12, 4, -6, -15, 2, 9, 0], "lower": 0, "upper": 0}`), 0o644))

	out, err := runApp(t, "", "--input", path, "--lower", "3", "--upper", "7", "--verify")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = runApp(t, "", "--input", path, "--lower", "-3", "--upper", "5")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestCountLargeNumbers(t *testing.T) {
	out, err := runApp(t, `{"nums": [-2147483647, 0, -2147483647, 2147483647]}`, "--lower=-564", "--upper=3864", "--verify")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestCountErrors(t *testing.T) {
	_, err := runApp(t, `{"nums": [1, 2], "upper": 2}`)
	assert.ErrorIs(t, err, errMissingBound)

	_, err = runApp(t, `{"nums": [1, 2147483648], "lower": 0, "upper": 2}`)
	assert.ErrorIs(t, err, errOutOfRange)

	_, err = runApp(t, `{"nums": [1], "lower": 0}`, "--upper", "4294967296")
	assert.ErrorIs(t, err, errOutOfRange)

	_, err = runApp(t, `{"nums": [1,`)
	assert.ErrorContains(t, err, "decoding request")

	_, err = runApp(t, `{"nums": [], "lower": 0, "upper": 0}`, "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown log level")

	_, err = runApp(t, "", "--input", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	lo, hi := int64(-5), int64(5)
	req := request{Nums: []int64{-2147483648, 0, 2147483647}, Lower: &lo, Upper: &hi}
	nums, lower, upper, err := req.validate()
	require.NoError(t, err)
	assert.Equal(t, []int32{-2147483648, 0, 2147483647}, nums)
	assert.Equal(t, int32(-5), lower)
	assert.Equal(t, int32(5), upper)
}

func TestVersion(t *testing.T) {
	out, err := runApp(t, "", "version")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}
