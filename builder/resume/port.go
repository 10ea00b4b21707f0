package resume

import (
	"context"

	"github.com/vitaehq/vitae/pkg/kernel"
)

// Repository defines persistence operations for resume documents
type Repository interface {
	Create(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id kernel.ResumeID) (*Document, error)
	Update(ctx context.Context, id kernel.ResumeID, doc *Document) error
	Delete(ctx context.Context, id kernel.ResumeID) error
	ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) ([]Summary, int, error)
}
