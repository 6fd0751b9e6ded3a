package database

import (
	"context"
	"fmt"

	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore keeps one document per invoice, keyed by invoice number.
// FIRESTORE_EMULATOR_HOST is honoured by the client library.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreStore(ctx context.Context, projectID, credentialsFile, collection string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore client for %s: %w", projectID, err)
	}
	return &FirestoreStore{client: client, collection: collection}, nil
}

func (s *FirestoreStore) doc(number string) *firestore.DocumentRef {
	return s.client.Collection(s.collection).Doc(number)
}

func (s *FirestoreStore) Get(ctx context.Context, number string) (*models.Invoice, error) {
	snap, err := s.doc(number).Get(ctx)
	if err != nil {
		return nil, translateFirestoreErr(err)
	}
	var inv models.Invoice
	if err := snap.DataTo(&inv); err != nil {
		return nil, fmt.Errorf("decode invoice %s: %w", number, err)
	}
	inv.Number = snap.Ref.ID
	restorePositions(&inv)
	return &inv, nil
}

// Create uses DocumentRef.Create, which fails with AlreadyExists instead of overwriting.
func (s *FirestoreStore) Create(ctx context.Context, inv *models.Invoice) error {
	_, err := s.doc(inv.Number).Create(ctx, inv)
	return translateFirestoreErr(err)
}

func (s *FirestoreStore) Delete(ctx context.Context, number string) error {
	_, err := s.doc(number).Delete(ctx, firestore.Exists)
	return translateFirestoreErr(err)
}

func (s *FirestoreStore) List(ctx context.Context) ([]models.Invoice, error) {
	snaps, err := s.client.Collection(s.collection).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, translateFirestoreErr(err)
	}

	invoices := make([]models.Invoice, 0, len(snaps))
	for _, snap := range snaps {
		var inv models.Invoice
		if err := snap.DataTo(&inv); err != nil {
			return nil, fmt.Errorf("decode invoice %s: %w", snap.Ref.ID, err)
		}
		inv.Number = snap.Ref.ID
		restorePositions(&inv)
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// restorePositions rebuilds the fields firestore does not store.
func restorePositions(inv *models.Invoice) {
	for i := range inv.Items {
		inv.Items[i].Position = i
		inv.Items[i].InvoiceNumber = inv.Number
	}
}

func translateFirestoreErr(err error) error {
	switch status.Code(err) {
	case codes.OK:
		return nil
	case codes.AlreadyExists:
		return invoice.ErrDuplicateIdentifier
	case codes.NotFound:
		return invoice.ErrNotFound
	case codes.DeadlineExceeded:
		return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	default:
		return err
	}
}
