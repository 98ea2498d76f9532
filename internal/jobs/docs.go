// Package jobs provides scheduled background tasks for the orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Publishes domain events stored in the outbox table to
// Kafka, oldest first, on a configurable schedule (default every two seconds)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, cfg.OutboxRelaySchedule, relayCmd, logger)
//	jobManager := jobs.NewJobManager(relay, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs and close the publisher when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed relay pass is logged; unpublished messages stay in the outbox
// and are retried on the next run
// - Overlapping runs are skipped rather than queued
package jobs
