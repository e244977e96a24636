package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"tarbiyah-bot/internal/report"
)

// Start schedules the nightly report at 23:00 in the given location
// (Asia/Jakarta in production). The job runs independently of in-flight
// user updates; a racing update simply lands in the next day's report.
func Start(r *report.Reporter, loc *time.Location) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(23, 0, 0))),
		gocron.NewTask(func() {
			log.Println("scheduler: sending daily report")
			if err := r.SendDaily(); err != nil {
				log.Println("scheduler: daily report:", err)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}
