package repository

import (
	"context"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/logger"
)

// SafeRollback rolls back a settlement transaction and logs any error
func SafeRollback(ctx context.Context, tx SettleTx) {
	if err := tx.Rollback(ctx); err != nil {
		// Check for common "closed" errors to avoid noise
		if err.Error() != domain.ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
