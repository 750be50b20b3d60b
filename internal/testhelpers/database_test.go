package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseSetup(t *testing.T) {
	path := SetupTestDatabase(t)
	assert.NotEmpty(t, path)
	assert.Zero(t, CountAlimentos(t, path))

	maca, cenoura := Maca(), Cenoura()
	SeedAlimentos(t, path, maca, cenoura)

	assert.Equal(t, int64(1), maca.ID)
	assert.Equal(t, int64(2), cenoura.ID)
	assert.Equal(t, int64(2), CountAlimentos(t, path))
}

func TestSetupTestDatabaseIsolated(t *testing.T) {
	a := SetupTestDatabase(t)
	b := SetupTestDatabase(t)
	assert.NotEqual(t, a, b)

	SeedAlimentos(t, a, Maca())
	assert.Equal(t, int64(1), CountAlimentos(t, a))
	assert.Zero(t, CountAlimentos(t, b))
}
