package io

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSamples(t *testing.T) {
	dir, err := ioutil.TempDir("", "newton_samples")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fname := path.Join(dir, "samples.txt")
	text := `# id x y
0 0.0 1.0
1 1.0 3.0
2 2.0 5.0
3 3.0 7.0
`
	require.NoError(t, ioutil.WriteFile(fname, []byte(text), 0644))

	xs, ys, err := ReadSamples(fname, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, xs)
	assert.Equal(t, []float64{1, 3, 5, 7}, ys)

	xs, ys, err = ReadSamples(fname, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5, 7}, xs)
	assert.Equal(t, []float64{0, 1, 2, 3}, ys)
}

func TestReadSamplesErrors(t *testing.T) {
	_, _, err := ReadSamples("does/not/exist.txt", 0, 1)
	assert.Error(t, err)
	_, _, err = ReadSamples("does/not/exist.txt", 1, 1)
	assert.Error(t, err)
	_, _, err = ReadSamples("does/not/exist.txt", -1, 1)
	assert.Error(t, err)
}
