package pointsample_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/pointsample"
)

func exportSample() pointsample.Sample {
	return pointsample.Sample{pointsample.Pt(1, 2), pointsample.Pt(30, 4), pointsample.Pt(0.25, 799.5)}
}

func TestSampleCSV(t *testing.T) {
	buff := new(bytes.Buffer)
	require.NoError(t, exportSample().WriteCSV(buff))

	lines := strings.Split(strings.TrimSpace(buff.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "index,x,y", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "1,30,4"), lines[2])

	got, err := pointsample.ReadCSV(buff)
	require.NoError(t, err)
	assert.Equal(t, exportSample(), got)
}

func TestSampleSaveCSV(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, exportSample().SaveCSV(fpath))

	f, err := os.Open(fpath)
	require.NoError(t, err)
	defer f.Close()

	got, err := pointsample.ReadCSV(f)
	require.NoError(t, err)
	assert.Equal(t, exportSample(), got)
}

func TestSampleJSON(t *testing.T) {
	data, err := exportSample().JSON()
	require.NoError(t, err)

	var got []map[string]float64
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 3)
	assert.Equal(t, map[string]float64{"X": 30, "Y": 4}, got[1])

	fpath := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, exportSample().SaveJSON(fpath))
	written, err := os.ReadFile(fpath)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(written))
}

func TestSampleBinary(t *testing.T) {
	data, err := exportSample().MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 4+16*3)

	var got pointsample.Sample
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, exportSample(), got)

	empty, err := pointsample.Sample{}.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, got.UnmarshalBinary(empty))
	assert.Empty(t, got)

	assert.Error(t, got.UnmarshalBinary([]byte{0, 0}))
	assert.Error(t, got.UnmarshalBinary(data[:len(data)-1]))
}
