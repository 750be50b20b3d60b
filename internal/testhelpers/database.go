package testhelpers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pageza/alimentos/backend/internal/database"
	"github.com/pageza/alimentos/backend/internal/models"
)

// SetupTestDatabase provisions a fresh SQLite file under t.TempDir and returns its path.
// The directory, and with it the file, is removed when the test ends.
func SetupTestDatabase(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "alimentos.db")
	require.NoError(t, database.Provision(path), "failed to provision test database")

	return path
}

// SeedAlimentos inserts the given rows directly, bypassing the service layer
func SeedAlimentos(t *testing.T, path string, alimentos ...*models.Alimento) {
	t.Helper()

	db, err := database.Open(path)
	require.NoError(t, err)
	defer database.Close(db)

	for _, a := range alimentos {
		require.NoError(t, db.Create(a).Error, "failed to seed alimento %q", a.Nome)
	}
}

// CountAlimentos returns the number of rows currently stored
func CountAlimentos(t *testing.T, path string) int64 {
	t.Helper()

	db, err := database.Open(path)
	require.NoError(t, err)
	defer database.Close(db)

	var count int64
	require.NoError(t, db.Model(&models.Alimento{}).Count(&count).Error)
	return count
}

// Maca returns the sample fruit used across tests
func Maca() *models.Alimento {
	return &models.Alimento{
		Nome:        "Maçã",
		Tipo:        "maçã",
		Cor:         "vermelha",
		MesColheita: "março",
		Categoria:   "fruta",
	}
}

// Cenoura returns the sample vegetable used across tests
func Cenoura() *models.Alimento {
	return &models.Alimento{
		Nome:        "Cenoura",
		Tipo:        "cenoura",
		Cor:         "laranja",
		MesColheita: "junho",
		Categoria:   "vegetal",
	}
}
