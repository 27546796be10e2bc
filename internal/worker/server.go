package worker

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

// NewServer builds the background task server with its routing mux. The
// caller owns the Run/Shutdown lifecycle.
func NewServer(redisOpt asynq.RedisClientOpt, handlers *Handlers, l logger.Logger) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				l.Error("Task failed", "type", task.Type(), "error", err)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDepartureReminder, handlers.HandleDepartureReminder)

	return srv, mux
}
