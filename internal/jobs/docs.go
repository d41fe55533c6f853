// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot guarantee.
//
// # Available Jobs
//
// 1. DriverAssignmentJob - Runs every second to bind available drivers to paid orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignDriverHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "* * * * * *", i.e. every second. A
// paid order that found no driver on one sweep is retried on the next, so
// NoDriverAvailable stays transient rather than terminal.
//
// # Error Handling
//
// Expected business outcomes (no paid orders waiting, no free drivers, a
// lost optimistic-concurrency race) are ignored; all other errors are
// logged as system issues.
package jobs
