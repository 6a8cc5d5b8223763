// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are built on github.com/robfig/cron/v3 and log through log/slog.
//
// # Available Jobs
//
// OrderBoardReportJob runs GetOrderStatusSummaryQuery on a schedule and logs how many
// orders sit in each status, so the kitchen can watch the board from the logs.
//
// # Usage
//
//	jobManager := jobs.NewJobManager("@every 1m", summaryHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule accepts standard five-field cron expressions and descriptors such as
// "@every 30s" or "@hourly". An empty schedule disables the job.
package jobs
