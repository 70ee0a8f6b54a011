// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. DeliveryStatsJob - recounts deliveries per status from the order service
// and saves the snapshot shown on the delivery dashboard cards
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshStatsHandler, "0 */5 * * * *", 30*time.Second, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed refresh is logged and the previous snapshot stays in place
// - An invalid schedule fails StartAll
package jobs
