package service

import (
	"context"

	"github.com/pageza/alimentos/backend/internal/models"
)

// IAlimentoService defines the storage operations over food items
type IAlimentoService interface {
	List(ctx context.Context) ([]models.Alimento, error)
	ListByTipo(ctx context.Context, tipo string) ([]models.Alimento, error)
	Create(ctx context.Context, alimento *models.Alimento) error
	DeleteByCategoria(ctx context.Context, categoria string) (int64, error)
}
