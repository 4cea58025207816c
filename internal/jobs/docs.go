// Package jobs provides scheduled background tasks for the wholesale system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. InventoryAuditJob - Periodically scans for products with negative stock
// buckets, which would indicate a broken inventory invariant.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getNegativeStockHandler, "*/5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The audit job logs query failures as errors and every negative stock row
// as a warning. An empty scan produces no output.
package jobs
