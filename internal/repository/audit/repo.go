package audit

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

// Repository writes connection lifecycle events to the connection_audit table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new connection audit repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// LogConnectionEvent records one "connected" or "disconnected" event.
func (r *Repository) LogConnectionEvent(ctx context.Context, userID, connectionID, event string) error {
	query := `
		INSERT INTO connection_audit (user_id, connection_id, event)
		VALUES ($1, $2, $3);
    `

	if _, err := r.db.ExecContext(ctx, query, userID, connectionID, event); err != nil {
		return fmt.Errorf("failed to log connection event: %w", err)
	}

	return nil
}
