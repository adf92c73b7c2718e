package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentID(t *testing.T) {
	id, err := DocumentID(CollectionCircuit, "Monza")
	require.NoError(t, err)
	assert.Equal(t, "circuit_Monza", id)

	id, err = DocumentID(CollectionRaces, "Monza")
	require.NoError(t, err)
	assert.Equal(t, "gp_2025_Monza", id)
}

func TestDocumentIDUnknownCollection(t *testing.T) {
	_, err := DocumentID(CollectionDrivers, "norris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}
