package cron

import (
	"context"
	"log"
	"time"

	"clinicflow/config"
	clientRepo "clinicflow/database/repository/client"
	"clinicflow/models"
	"clinicflow/services/suggestion"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const (
	TypeBulkGenerate = "suggestion:bulkGenerate"
	TypeExpireStale  = "suggestion:expire"
)

// InitSuggestionWorker runs the async worker and its periodic scheduler in
// the background.
func InitSuggestionWorker(engine suggestion.Engine, clients clientRepo.ClientRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			// Bulk generation is strictly sequential per run; one worker slot
			// keeps overlapping runs from interleaving inserts.
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBulkGenerate, handleBulkGenerateTask(engine, clients))
	mux.HandleFunc(TypeExpireStale, handleExpireStaleTask(engine))

	go monitorRedisConnection()
	go runScheduler(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[SuggestionWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SuggestionWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SuggestionWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// runScheduler enqueues the nightly roster run and the stale-suggestion
// sweep on a cron schedule.
func runScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})

	if _, err := scheduler.Register("0 6 * * *", asynq.NewTask(TypeBulkGenerate, nil)); err != nil {
		log.Printf("[SuggestionWorker] Failed to register bulk schedule: %v", err)
		return
	}
	if _, err := scheduler.Register("0 3 * * *", asynq.NewTask(TypeExpireStale, nil)); err != nil {
		log.Printf("[SuggestionWorker] Failed to register expiry schedule: %v", err)
		return
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[SuggestionWorker] Scheduler stopped: %v", err)
	}
}

func handleBulkGenerateTask(engine suggestion.Engine, clients clientRepo.ClientRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		roster, err := clients.ListActive(ctx)
		if err != nil {
			log.Printf("[BulkGenerate] Failed to load roster: %v", err)
			return err
		}
		if len(roster) == 0 {
			log.Println("[BulkGenerate] No active clients, nothing to do")
			return nil
		}

		ids := make([]string, 0, len(roster))
		for _, cl := range roster {
			ids = append(ids, cl.ID)
		}

		cfg := models.BulkConfig{
			SuggestionConfig: models.SuggestionConfig{
				DaysAhead:      config.AppConfig.SuggestionDaysAhead,
				MaxSuggestions: config.AppConfig.SuggestionMaxPerClient,
			},
			DedupePolicy: models.DedupeSlot,
		}

		_, summary, err := engine.RunBulk(ctx, ids, "scheduler", cfg, func(done, total int) {
			if done == total || done%25 == 0 {
				log.Printf("[BulkGenerate] Progress %d/%d", done, total)
			}
		})
		if err != nil {
			log.Printf("[BulkGenerate] Run aborted: %v", err)
			return err
		}

		log.Printf("[BulkGenerate] Done: %d success, %d skipped, %d errors, %d suggestions",
			summary.Success, summary.Skipped, summary.Errors, summary.TotalSuggestions)
		return nil
	}
}

func handleExpireStaleTask(engine suggestion.Engine) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		expired, err := engine.ExpireStalePending(ctx, config.AppConfig.SuggestionExpiryGraceDays)
		if err != nil {
			log.Printf("[ExpireStale] Sweep failed: %v", err)
			return err
		}
		log.Printf("[ExpireStale] Expired %d stale pending suggestions", expired)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SuggestionWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
