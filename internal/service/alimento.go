package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/alimentos/backend/internal/database"
	"github.com/pageza/alimentos/backend/internal/models"
)

// AlimentoService runs each operation on its own short-lived connection
type AlimentoService struct {
	path string
	open func(path string) (*gorm.DB, error)
}

// NewAlimentoService creates a service backed by the SQLite file at path
func NewAlimentoService(path string) *AlimentoService {
	return &AlimentoService{
		path: path,
		open: database.Open,
	}
}

// withConn opens a connection, hands it to fn and always closes it afterwards
func (s *AlimentoService) withConn(ctx context.Context, fn func(db *gorm.DB) error) (err error) {
	db, err := s.open(s.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := database.Close(db); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", cerr)
		}
	}()

	return fn(db.WithContext(ctx))
}

// List returns every stored alimento in storage order
func (s *AlimentoService) List(ctx context.Context) ([]models.Alimento, error) {
	alimentos := make([]models.Alimento, 0)
	err := s.withConn(ctx, func(db *gorm.DB) error {
		return db.Find(&alimentos).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list alimentos: %w", err)
	}
	if alimentos == nil {
		alimentos = []models.Alimento{}
	}
	return alimentos, nil
}

// ListByTipo returns the alimentos whose tipo equals tipo exactly
func (s *AlimentoService) ListByTipo(ctx context.Context, tipo string) ([]models.Alimento, error) {
	alimentos := make([]models.Alimento, 0)
	err := s.withConn(ctx, func(db *gorm.DB) error {
		return db.Where("tipo = ?", tipo).Find(&alimentos).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list alimentos by tipo %q: %w", tipo, err)
	}
	if alimentos == nil {
		alimentos = []models.Alimento{}
	}
	return alimentos, nil
}

// Create inserts alimento and sets its ID
func (s *AlimentoService) Create(ctx context.Context, alimento *models.Alimento) error {
	err := s.withConn(ctx, func(db *gorm.DB) error {
		return db.Create(alimento).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create alimento: %w", err)
	}
	return nil
}

// DeleteByCategoria removes every alimento in categoria and reports how many went.
// Deleting an empty categoria is not an error.
func (s *AlimentoService) DeleteByCategoria(ctx context.Context, categoria string) (int64, error) {
	var deleted int64
	err := s.withConn(ctx, func(db *gorm.DB) error {
		result := db.Where("categoria = ?", categoria).Delete(&models.Alimento{})
		deleted = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete alimentos in categoria %q: %w", categoria, err)
	}
	return deleted, nil
}
