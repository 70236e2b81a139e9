package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/tacmarket/marketplace-api/sheets"
	"github.com/tacmarket/marketplace-api/store"
)

// StartCronJobs schedules the daily analytics snapshot push.
func StartCronJobs(st *store.Store, outbox *sheets.Outbox) {
	c := cron.New()
	// Append one analytics row to the spreadsheet every midnight
	_, err := c.AddFunc("0 0 * * *", func() {
		row := sheets.BuildAnalytics(st.Now(), st.Providers(), st.Profiles(), st.Appointments())
		outbox.Enqueue(sheets.Event{Kind: sheets.EventAnalytics, Analytics: row})
		log.Println("Queued daily analytics snapshot")
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for analytics snapshots")
}
