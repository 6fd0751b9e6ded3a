package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go-invoice-maker/internal/config"
	"go-invoice-maker/internal/database"
	"go-invoice-maker/internal/document"
	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/models"
)

// IInvoiceService is everything the HTTP layer can do with submitted invoices.
type IInvoiceService interface {
	Submit(ctx context.Context, draft *invoice.Draft) (models.InvoiceView, error)
	Get(ctx context.Context, number string) (models.InvoiceView, error)
	List(ctx context.Context) ([]models.InvoiceView, error)
	Search(ctx context.Context, query string) ([]models.InvoiceView, error)
	Delete(ctx context.Context, number string) error
	Document(ctx context.Context, number string) (document.Page, error)
	Summary(ctx context.Context) (*database.SummaryReport, error)
}

// invoiceService implements IInvoiceService on top of a database.Store.
type invoiceService struct {
	store      database.Store
	letterhead config.Letterhead
	uploadDir  string
	timeout    time.Duration
	now        func() time.Time
}

// NewInvoiceService creates a new InvoiceService. Every store call is bounded by timeout.
// Invoice logos are only read from uploadDir.
func NewInvoiceService(store database.Store, letterhead config.Letterhead, uploadDir string, timeout time.Duration) IInvoiceService {
	return &invoiceService{
		store:      store,
		letterhead: letterhead,
		uploadDir:  uploadDir,
		timeout:    timeout,
		now:        time.Now,
	}
}

func (s *invoiceService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// storeError keeps the domain sentinels and turns everything else into one of
// the two store failure kinds.
func storeError(op, number string, err error) error {
	switch {
	case errors.Is(err, invoice.ErrDuplicateIdentifier), errors.Is(err, invoice.ErrNotFound):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("invoice store timeout: %s %q: %v", op, number, err)
		return fmt.Errorf("%w: %s", invoice.ErrStoreTimeout, op)
	default:
		log.Printf("invoice store error: %s %q: %v", op, number, err)
		return fmt.Errorf("%w: %s: %v", invoice.ErrStoreUnavailable, op, err)
	}
}

// Submit validates and freezes the draft, then inserts it if its number is
// still free. The draft is never modified.
func (s *invoiceService) Submit(ctx context.Context, draft *invoice.Draft) (models.InvoiceView, error) {
	// 1. Validate and snapshot the draft
	inv, err := draft.Freeze()
	if err != nil {
		return models.InvoiceView{}, err
	}
	inv.CreatedAt = s.now().UTC()

	// 2. Insert-if-absent in one store call
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.store.Create(ctx, &inv); err != nil {
		return models.InvoiceView{}, storeError("create", inv.Number, err)
	}

	log.Printf("Invoice %s saved for %s", inv.Number, inv.Customer.Name)
	return invoice.View(inv), nil
}

func (s *invoiceService) Get(ctx context.Context, number string) (models.InvoiceView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	inv, err := s.store.Get(ctx, number)
	if err != nil {
		return models.InvoiceView{}, storeError("get", number, err)
	}
	return invoice.View(*inv), nil
}

func (s *invoiceService) list(ctx context.Context) ([]models.Invoice, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	invoices, err := s.store.List(ctx)
	if err != nil {
		return nil, storeError("list", "", err)
	}
	return invoices, nil
}

func views(invoices []models.Invoice) []models.InvoiceView {
	out := make([]models.InvoiceView, len(invoices))
	for i, inv := range invoices {
		out[i] = invoice.View(inv)
	}
	return out
}

func (s *invoiceService) List(ctx context.Context) ([]models.InvoiceView, error) {
	invoices, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return views(invoices), nil
}

// Search filters the full listing by invoice number or customer name.
func (s *invoiceService) Search(ctx context.Context, query string) ([]models.InvoiceView, error) {
	invoices, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return views(invoice.Filter(invoices, query)), nil
}

func (s *invoiceService) Delete(ctx context.Context, number string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.store.Delete(ctx, number); err != nil {
		return storeError("delete", number, err)
	}
	log.Printf("Invoice %s deleted", number)
	return nil
}

// Document lays out a stored invoice with the configured letterhead. A logo
// outside the upload directory is dropped in favour of the letterhead logo.
func (s *invoiceService) Document(ctx context.Context, number string) (document.Page, error) {
	view, err := s.Get(ctx, number)
	if err != nil {
		return document.Page{}, err
	}
	inv := view.Invoice
	if inv.Logo != "" {
		resolved := document.ResolveLogo(inv.Logo, s.uploadDir)
		if resolved == "" {
			log.Printf("Invoice %s: ignoring logo outside upload directory: %q", inv.Number, inv.Logo)
		}
		inv.Logo = resolved
	}
	return document.Render(inv, s.letterhead), nil
}

func (s *invoiceService) Summary(ctx context.Context) (*database.SummaryReport, error) {
	invoices, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return database.Summarize(invoices), nil
}
