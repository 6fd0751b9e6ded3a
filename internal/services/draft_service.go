package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/models"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftView is a snapshot of a draft together with its current totals.
type DraftView struct {
	ID string `json:"id"`
	invoice.Draft
	Totals models.Totals `json:"totals"`
}

// DraftHeader carries the editable fields outside the item table.
type DraftHeader struct {
	Number      string             `json:"invoice_number"`
	Date        string             `json:"date"`
	DispatchRef string             `json:"desp"`
	Phone       string             `json:"phone"`
	Customer    models.Customer    `json:"customer"`
	CGST        invoice.NumberText `json:"cgst"`
	SGST        invoice.NumberText `json:"sgst"`
	Logo        string             `json:"logo"`
}

// IDraftService keeps the drafts being edited, one writer per draft.
type IDraftService interface {
	Create(ctx context.Context, fromNumber string) (DraftView, error)
	Get(id string) (DraftView, error)
	UpdateHeader(id string, header DraftHeader) (DraftView, error)
	AddItem(id string) (DraftView, error)
	UpdateItem(id string, index int, field invoice.ItemField, value string) (DraftView, error)
	RemoveItem(id string, index int) (DraftView, error)
	Submit(ctx context.Context, id string) (models.InvoiceView, error)
	Discard(id string) error
	Sweep() int
}

type draftEntry struct {
	mu       sync.Mutex
	draft    *invoice.Draft
	lastUsed time.Time
	expired  bool
}

// draftService implements IDraftService in memory.
type draftService struct {
	invoices IInvoiceService
	now      func() time.Time
	idle     time.Duration

	mutex  sync.RWMutex
	drafts map[string]*draftEntry
}

// NewDraftService creates a new DraftService that submits through invoices.
// Drafts untouched for longer than idle are dropped by Sweep; zero keeps them.
func NewDraftService(invoices IInvoiceService, idle time.Duration) IDraftService {
	return &draftService{
		invoices: invoices,
		now:      time.Now,
		idle:     idle,
		drafts:   make(map[string]*draftEntry),
	}
}

func snapshot(id string, d *invoice.Draft) DraftView {
	view := DraftView{ID: id, Draft: *d, Totals: d.Totals()}
	view.Items = append([]invoice.DraftItem{}, d.Items...)
	return view
}

// Create starts an empty draft, or a copy of a stored invoice when fromNumber is set.
func (s *draftService) Create(ctx context.Context, fromNumber string) (DraftView, error) {
	draft := invoice.NewDraft(s.now())
	if fromNumber != "" {
		stored, err := s.invoices.Get(ctx, fromNumber)
		if err != nil {
			return DraftView{}, err
		}
		draft = invoice.DraftFrom(stored.Invoice)
	}

	id := uuid.NewString()
	s.mutex.Lock()
	s.drafts[id] = &draftEntry{draft: draft, lastUsed: s.now()}
	s.mutex.Unlock()

	return snapshot(id, draft), nil
}

func (s *draftService) entry(id string) (*draftEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	e, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return e, nil
}

// lock takes the draft's lock and marks it used. The entry may have been
// swept between lookup and lock.
func (s *draftService) lock(id string) (*draftEntry, error) {
	e, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	if e.expired {
		e.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	e.lastUsed = s.now()
	return e, nil
}

// edit runs fn under the draft's lock and returns the resulting snapshot.
// A failing fn leaves the draft as it was.
func (s *draftService) edit(id string, fn func(d *invoice.Draft) error) (DraftView, error) {
	e, err := s.lock(id)
	if err != nil {
		return DraftView{}, err
	}
	defer e.mu.Unlock()

	if fn != nil {
		if err := fn(e.draft); err != nil {
			return DraftView{}, err
		}
	}
	return snapshot(id, e.draft), nil
}

func (s *draftService) Get(id string) (DraftView, error) {
	return s.edit(id, nil)
}

func (s *draftService) UpdateHeader(id string, h DraftHeader) (DraftView, error) {
	return s.edit(id, func(d *invoice.Draft) error {
		d.Number = h.Number
		if h.Date != "" {
			d.Date = h.Date
		}
		d.DispatchRef = h.DispatchRef
		d.Phone = h.Phone
		d.Customer = h.Customer
		d.CGST = h.CGST
		d.SGST = h.SGST
		d.Logo = h.Logo
		return nil
	})
}

func (s *draftService) AddItem(id string) (DraftView, error) {
	return s.edit(id, func(d *invoice.Draft) error {
		d.AddItem()
		return nil
	})
}

func (s *draftService) UpdateItem(id string, index int, field invoice.ItemField, value string) (DraftView, error) {
	return s.edit(id, func(d *invoice.Draft) error {
		return d.UpdateItem(index, field, value)
	})
}

func (s *draftService) RemoveItem(id string, index int) (DraftView, error) {
	return s.edit(id, func(d *invoice.Draft) error {
		return d.RemoveItem(index)
	})
}

// Submit saves the draft as an invoice and resets it on success. On any
// failure the draft keeps every field.
func (s *draftService) Submit(ctx context.Context, id string) (models.InvoiceView, error) {
	e, err := s.lock(id)
	if err != nil {
		return models.InvoiceView{}, err
	}
	defer e.mu.Unlock()

	view, err := s.invoices.Submit(ctx, e.draft)
	if err != nil {
		return models.InvoiceView{}, err
	}
	e.draft.Reset()
	return view, nil
}

func (s *draftService) Discard(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, id)
	return nil
}

// Sweep drops drafts idle for longer than the configured timeout and returns
// how many were dropped. Drafts locked by an edit in progress are kept.
func (s *draftService) Sweep() int {
	if s.idle <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idle)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	dropped := 0
	for id, e := range s.drafts {
		if !e.mu.TryLock() {
			continue
		}
		if e.lastUsed.Before(cutoff) {
			e.expired = true
			delete(s.drafts, id)
			dropped++
		}
		e.mu.Unlock()
	}
	return dropped
}

// RunSweeper calls Sweep every interval until ctx is done.
func RunSweeper(ctx context.Context, drafts IDraftService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := drafts.Sweep(); n > 0 {
				log.Printf("Dropped %d idle drafts", n)
			}
		}
	}
}
