package jobs

import (
	"context"
	"log/slog"

	"wholesale/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// InventoryAuditJob periodically scans the product table for negative stock
// buckets. Under correct operation the scan comes back empty; any hit means
// an inventory invariant was broken and needs investigation.
type InventoryAuditJob struct {
	handler  queries.GetNegativeStockQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewInventoryAuditJob creates the audit job with a standard cron schedule,
// e.g. "*/5 * * * *" for every five minutes.
func NewInventoryAuditJob(
	handler queries.GetNegativeStockQueryHandler,
	schedule string,
	logger *slog.Logger,
) *InventoryAuditJob {
	return &InventoryAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "inventory_audit_job"),
	}
}

// Start schedules the audit scan.
func (j *InventoryAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		rows, err := j.handler.Handle(ctx, queries.NewGetNegativeStockQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Inventory audit failed", "error", err)
			return
		}

		for _, row := range rows {
			j.logger.WarnContext(ctx, "Negative stock detected",
				"product_id", row.ID.String(),
				"name", row.Name,
				"quantity", row.Quantity.String(),
				"reserved", row.Reserved.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Inventory audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the audit job.
func (j *InventoryAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Inventory audit job stopped")
}
