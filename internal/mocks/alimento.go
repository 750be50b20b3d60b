package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/alimentos/backend/internal/models"
)

// MockAlimentoService is a mock implementation of the alimento service
type MockAlimentoService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockAlimentoService) List(ctx context.Context) ([]models.Alimento, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alimento), args.Error(1)
}

// ListByTipo mocks the ListByTipo method
func (m *MockAlimentoService) ListByTipo(ctx context.Context, tipo string) ([]models.Alimento, error) {
	args := m.Called(ctx, tipo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alimento), args.Error(1)
}

// Create mocks the Create method
func (m *MockAlimentoService) Create(ctx context.Context, alimento *models.Alimento) error {
	args := m.Called(ctx, alimento)
	return args.Error(0)
}

// DeleteByCategoria mocks the DeleteByCategoria method
func (m *MockAlimentoService) DeleteByCategoria(ctx context.Context, categoria string) (int64, error) {
	args := m.Called(ctx, categoria)
	return args.Get(0).(int64), args.Error(1)
}
