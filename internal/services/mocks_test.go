package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-invoice-maker/internal/models"
)

// MockStore
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, number string) (*models.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, inv *models.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockStore) List(ctx context.Context) ([]models.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}
