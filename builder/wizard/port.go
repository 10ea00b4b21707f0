package wizard

import (
	"context"

	"github.com/vitaehq/vitae/pkg/kernel"
)

// DraftStore holds in-progress sessions. Drafts are transient: they
// expire on their own and are deleted on save or cancel, so nothing
// persists between sessions except what an explicit save stores.
type DraftStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id kernel.SessionID) (*Session, error)
	Delete(ctx context.Context, id kernel.SessionID) error
}
