package cron

import (
	"context"
	"log"
	"time"

	"cabinkeep/config"
	tokenRepo "cabinkeep/database/repository/token"

	"github.com/hibiken/asynq"
)

const TypeTokenPurge = "token:purge"

// InitMaintenanceWorker runs the async worker and its hourly schedule in the
// background. Its only job today is purging refresh tokens that expired or
// were rotated away and never cleaned up.
func InitMaintenanceWorker(tokens tokenRepo.RefreshTokenRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTokenPurge, handleTokenPurgeTask(tokens))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeTokenPurge, nil)); err != nil {
		log.Printf("[MaintenanceWorker] Failed to register purge schedule: %v", err)
	}

	go func() {
		log.Println("[MaintenanceWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MaintenanceWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MaintenanceWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[MaintenanceWorker] Scheduler stopped: %v", err)
		}
	}()
}

func handleTokenPurgeTask(tokens tokenRepo.RefreshTokenRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		deleted, err := tokens.DeleteExpired(ctx, time.Now())
		if err != nil {
			log.Printf("[TokenPurge] Failed to purge expired refresh tokens: %v", err)
			return err
		}
		if deleted > 0 {
			log.Printf("[TokenPurge] Purged %d expired refresh tokens", deleted)
		}
		return nil
	}
}
