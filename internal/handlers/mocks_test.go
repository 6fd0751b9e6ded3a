package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-invoice-maker/internal/database"
	"go-invoice-maker/internal/document"
	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/models"
	"go-invoice-maker/internal/services"
)

// --- Mocks ---

// MockInvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Submit(ctx context.Context, draft *invoice.Draft) (models.InvoiceView, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(models.InvoiceView), args.Error(1)
}

func (m *MockInvoiceService) Get(ctx context.Context, number string) (models.InvoiceView, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.InvoiceView), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context) ([]models.InvoiceView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InvoiceView), args.Error(1)
}

func (m *MockInvoiceService) Search(ctx context.Context, query string) ([]models.InvoiceView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InvoiceView), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockInvoiceService) Document(ctx context.Context, number string) (document.Page, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(document.Page), args.Error(1)
}

func (m *MockInvoiceService) Summary(ctx context.Context) (*database.SummaryReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.SummaryReport), args.Error(1)
}

// MockDraftService
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) Create(ctx context.Context, fromNumber string) (services.DraftView, error) {
	args := m.Called(ctx, fromNumber)
	return args.Get(0).(services.DraftView), args.Error(1)
}

func (m *MockDraftService) Get(id string) (services.DraftView, error) {
	args := m.Called(id)
	return args.Get(0).(services.DraftView), args.Error(1)
}

func (m *MockDraftService) UpdateHeader(id string, header services.DraftHeader) (services.DraftView, error) {
	args := m.Called(id, header)
	return args.Get(0).(services.DraftView), args.Error(1)
}

func (m *MockDraftService) AddItem(id string) (services.DraftView, error) {
	args := m.Called(id)
	return args.Get(0).(services.DraftView), args.Error(1)
}

func (m *MockDraftService) UpdateItem(id string, index int, field invoice.ItemField, value string) (services.DraftView, error) {
	args := m.Called(id, index, field, value)
	return args.Get(0).(services.DraftView), args.Error(1)
}

func (m *MockDraftService) RemoveItem(id string, index int) (services.DraftView, error) {
	args := m.Called(id, index)
	return args.Get(0).(services.DraftView), args.Error(1)
}

func (m *MockDraftService) Submit(ctx context.Context, id string) (models.InvoiceView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.InvoiceView), args.Error(1)
}

func (m *MockDraftService) Discard(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockDraftService) Sweep() int {
	args := m.Called()
	return args.Int(0)
}
