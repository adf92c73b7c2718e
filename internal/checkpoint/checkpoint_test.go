package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, s)
	assert.False(t, s.Done("FP1"))
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(dir)
	require.NoError(t, err)
	s.Mark("FP1")
	s.Mark("Sprint")
	require.NoError(t, s.Save(dir))

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, reloaded.Done("FP1"))
	assert.True(t, reloaded.Done("Sprint"))
	assert.False(t, reloaded.Done("Qualifying"))
}

func TestSaveEmptyStatus(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Status{}.Save(dir))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, s)
}
