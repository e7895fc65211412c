package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zone-rando/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID(idgen.RunPrefix)

	first := gen.Generate()
	second := gen.Generate()
	assert.NotEqual(t, first, second)

	require.True(t, strings.HasPrefix(first, "run_"))
	_, err := uuid.Parse(strings.TrimPrefix(first, "run_"))
	assert.NoError(t, err)

	_, err = uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential(idgen.RunPrefix)
	assert.Equal(t, "run_1", gen.Generate())
	assert.Equal(t, "run_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
