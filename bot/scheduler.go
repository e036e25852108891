package bot

import (
	"log"

	"modmail-bot/relay"

	"github.com/robfig/cron/v3"
)

var c *cron.Cron

// startScheduler starts the cron jobs. The hourly sweep removes rooms whose
// thread disappeared while the bot was offline or the delete event was lost.
func startScheduler(router *relay.Router) {
	log.Println("Initializing scheduler...")
	c = cron.New()
	_, err := c.AddFunc("@hourly", func() {
		log.Println("Running room reconciliation...")
		router.Reconcile()
	})
	if err != nil {
		log.Fatalf("Could not set up cron job: %v", err)
	}
	c.Start()
	log.Println("Reconciliation scheduled to run hourly.")
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}
