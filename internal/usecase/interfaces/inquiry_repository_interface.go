package interfaces

import (
	"context"
	"errors"

	"cctv_estimator/internal/domain/entities"
)

// ErrInquiryNotFound is returned by repositories that can tell a missing
// record apart from a successful update.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryListener receives the full, newest-first list of inquiries after
// every change.
type InquiryListener func(inquiries []entities.Inquiry)

// IInquiryRepository abstracts inquiry persistence.
//
// Two strategies implement it:
//   - local-only: SQLite key/value row, single device, snapshot refresh after each mutation
//   - shared: DynamoDB table with change notifications pushed to every subscriber
//
// Create assigns ID and CreatedAt and always stores status "pending".
// List returns inquiries ordered by CreatedAt descending.
// Subscribe delivers a snapshot immediately and after every change until the
// returned cancel func is called.
// Delete of an unknown id is not an error.

type IInquiryRepository interface {
	Create(ctx context.Context, in entities.NewInquiry) (entities.Inquiry, error)
	List(ctx context.Context) ([]entities.Inquiry, error)
	Subscribe(ctx context.Context, listener InquiryListener) (cancel func(), err error)
	UpdateStatus(ctx context.Context, id string, status entities.InquiryStatus) error
	Delete(ctx context.Context, id string) error
}

// IInquiryImporter writes already-built inquiries as one all-or-nothing batch.
// Writes are keyed by inquiry ID, so replaying a batch does not duplicate.

type IInquiryImporter interface {
	ImportBatch(ctx context.Context, inquiries []entities.Inquiry) error
}
