package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academico_backend/internals/state"
)

func TestImporterForSelectsPolicy(t *testing.T) {
	assert.Equal(t, PolicyLenient, ImporterFor("lenient").Name())
	assert.Equal(t, PolicyStrict, ImporterFor("strict").Name())

	// Nama tak dikenal jatuh ke lenient.
	assert.Equal(t, PolicyLenient, ImporterFor("").Name())
	assert.Equal(t, PolicyLenient, ImporterFor("Strict").Name())
}

func TestLenientImporterReportsEngineError(t *testing.T) {
	snap := state.DefaultSnapshot()
	imp := ImporterFor(PolicyLenient)

	n, errs := imp.Import(snap, "", ImportScope{CoordinationID: "co", CareerID: "ca", Source: "archivo"})
	assert.Zero(t, n)
	require.Len(t, errs, 1)
	assert.Equal(t, "no data", errs[0])
}

func TestStrictImporterIgnoresScope(t *testing.T) {
	snap := state.DefaultSnapshot()
	imp := ImporterFor(PolicyStrict)

	n, errs := imp.Import(snap, "", ImportScope{})
	assert.Zero(t, n)
	require.Len(t, errs, 1)
	assert.Equal(t, "no data", errs[0])
}
