package jobs

import (
	"context"
	"log/slog"

	"custody/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ContractStatusJob periodically logs the contract phase, pending count and
// tallies so operators can follow fulfillment progress without querying the
// API.
type ContractStatusJob struct {
	reader  queries.ContractReader
	handler queries.CountsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewContractStatusJob creates a job reporting the contract status once a
// minute.
func NewContractStatusJob(
	reader queries.ContractReader,
	handler queries.CountsQueryHandler,
	logger *slog.Logger,
) *ContractStatusJob {
	return &ContractStatusJob{
		reader:  reader,
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "contract_status_job"),
	}
}

// Start begins the status job, running once a minute.
func (j *ContractStatusJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		aggregate, err := j.reader.Contract(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Contract status job failed", "error", err)
			return
		}

		counts, err := j.handler.Handle(ctx, queries.NewCountsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Contract status job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Contract status",
			"phase", aggregate.Phase().String(),
			"pending", aggregate.PendingCount(),
			"satisfied", aggregate.IsSatisfied(),
			"items", counts.ItemCount,
			"shipments", counts.ShipmentCount,
			"couriers", counts.CourierCount,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Contract status job started (running every minute)")
	return nil
}

// Stop stops the status job.
func (j *ContractStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Contract status job stopped")
}
