package helper

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var tokenScheduler gocron.Scheduler

func PurgeExpiredRefreshTokens() {
	result := database.DB.
		Where("expires_at < ?", time.Now()).
		Delete(&model.RefreshToken{})

	if result.Error != nil {
		log.Printf("failed to purge refresh tokens: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("purged %d expired refresh tokens", result.RowsAffected)
	}
}

func StartTokenCleanupScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	tokenScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(PurgeExpiredRefreshTokens),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("token cleanup scheduler started (daily 03:00)")
}

func StopTokenCleanupScheduler() {
	if tokenScheduler != nil {
		if err := tokenScheduler.Shutdown(); err != nil {
			log.Printf("failed to stop token scheduler: %v", err)
		}
	}
}
