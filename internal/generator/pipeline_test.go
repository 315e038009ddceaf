package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFullDataset(t *testing.T) {
	p := testParams()

	dataset, err := Generate(p)
	require.NoError(t, err)

	assert.Len(t, dataset.Customers, p.Customers)
	assert.Len(t, dataset.Merchants, p.Merchants)
	assert.Len(t, dataset.Payments, p.Payments)
	assert.NotEmpty(t, dataset.Settlements)
}

func TestGenerateDeterministic(t *testing.T) {
	p := testParams()

	first, err := Generate(p)
	require.NoError(t, err)
	second, err := Generate(p)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

// The dataset must not depend on how many goroutines filled it.
func TestGenerateWorkerCountInvariance(t *testing.T) {
	serial := testParams()
	serial.Workers = 1

	parallel := testParams()
	parallel.Workers = 8

	first, err := Generate(serial)
	require.NoError(t, err)
	second, err := Generate(parallel)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestGenerateRejectsInvalidParams(t *testing.T) {
	p := testParams()
	p.Payments = -1

	dataset, err := Generate(p)
	require.Error(t, err)
	require.Nil(t, dataset)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
}
