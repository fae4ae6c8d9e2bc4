package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	migrations, err := New()
	require.NoError(t, err)

	sorted := migrations.Sorted()
	require.Len(t, sorted, 2)
	assert.Equal(t, "20240501000000", sorted[0].Name)
	assert.NotNil(t, sorted[0].Up)
	assert.NotNil(t, sorted[0].Down)
}
