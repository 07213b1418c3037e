package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/covreport/internal/ir"
)

func TestParse_ReachabilityArray(t *testing.T) {
	data := []byte(`[
		{"level": 1, "objects": [1, 2], "actions": [0]},
		{"level": 2, "objects": [2, 3], "actions": []}
	]`)

	docs, err := NewLoader().Parse("reachable.json", data)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, ir.Document{Level: 1, Objects: []int{1, 2}, Actions: []int{0}}, docs[0])
	assert.Equal(t, 2, docs[1].Level)
	assert.Equal(t, []int{2, 3}, docs[1].Objects)
}

func TestParse_ConcatenatedSessions(t *testing.T) {
	// Shape the game prints to stderr at the end of each level
	data := []byte(`{ "level": 3,
  "objects": [0, 4],
  "actions": [7]
}
{ "level": 1,
  "objects": [],
  "actions": [2, 2]
}
`)

	docs, err := NewLoader().Parse("session.log", data)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 3, docs[0].Level)
	assert.Equal(t, []int{2, 2}, docs[1].Actions)
}

func TestParse_ExtraFieldsIgnored(t *testing.T) {
	docs, err := NewLoader().Parse("s.json", []byte(`{"level": 1, "objects": [], "actions": [], "duration": 120}`))
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestParse_MissingListsDefaultEmpty(t *testing.T) {
	docs, err := NewLoader().Parse("s.json", []byte(`{"level": 4}`))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Empty(t, docs[0].Objects)
	assert.Empty(t, docs[0].Actions)
}

func TestParse_Empty(t *testing.T) {
	docs, err := NewLoader().Parse("s.json", []byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"level zero", `{"level": 0, "objects": [], "actions": []}`},
		{"missing level", `{"objects": [1], "actions": []}`},
		{"level string", `{"level": "1", "objects": [], "actions": []}`},
		{"negative index", `{"level": 1, "objects": [-1], "actions": []}`},
		{"float index", `{"level": 1, "objects": [], "actions": [1.5]}`},
		{"objects not a list", `{"level": 1, "objects": 3, "actions": []}`},
	}

	loader := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Parse("bad.json", []byte(tt.data))
			require.Error(t, err)
			assert.True(t, ir.IsCode(err, ir.ErrCodeInvalidDocument), "got %v", err)
			assert.Contains(t, err.Error(), "bad.json")
		})
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := NewLoader().Parse("bad.json", []byte(`{"level": 1,`))
	require.Error(t, err)
	assert.True(t, ir.IsCode(err, ir.ErrCodeInvalidDocument))
	assert.Contains(t, err.Error(), "malformed JSON")
}

func TestParse_ErrorIndexPointsAtDocument(t *testing.T) {
	data := []byte(`{"level": 1} {"level": -3}`)

	_, err := NewLoader().Parse("s.json", data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index=1")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reachable.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"level": 1, "objects": [0], "actions": []}]`), 0644))

	docs, err := NewLoader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, []int{0}, docs[0].Objects)
}
