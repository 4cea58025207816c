package jobs

import (
	"fmt"
	"log/slog"

	"wholesale/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	inventoryAuditJob *InventoryAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getNegativeStockHandler queries.GetNegativeStockQueryHandler,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		inventoryAuditJob: NewInventoryAuditJob(getNegativeStockHandler, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.inventoryAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start inventory audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.inventoryAuditJob.Stop()
}
