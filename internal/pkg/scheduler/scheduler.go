package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ticketing-service/config"
	"ticketing-service/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypePayoutSweep = "payout_sweep"

	cronUniqueTTL = 30 * time.Minute
)

type Scheduler struct {
	Log log.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(fmt.Sprintf(":%s", port), mux)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

// StartPeriodic enqueues the payout sweep on cronSpec. Only one replica should
// run the periodic scheduler; every replica may run handlers.
func (s *Scheduler) StartPeriodic(cfg *config.RedisConfig, cronSpec string) {
	ctx := context.Background()
	scheduler := asynq.NewScheduler(redisOpt(cfg), nil)

	entryID, err := scheduler.Register(cronSpec, asynq.NewTask(TypePayoutSweep, nil), asynq.Unique(cronUniqueTTL))
	if err != nil {
		s.Log.Error(ctx, "error register payout sweep", err)
		return
	}
	s.Log.Info(ctx, "payout sweep registered", entryID, cronSpec)

	if err := scheduler.Run(); err != nil {
		s.Log.Error(ctx, "error start periodic scheduler", err)
	}
}

func (s *Scheduler) StartHandler(cfg *config.SchedulerConfig, redisCfg *config.RedisConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	srv := asynq.NewServer(
		redisOpt(redisCfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
