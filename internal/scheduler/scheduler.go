package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"autoblog/config"
	"autoblog/internal/service"
)

// NewCronParser accepts an optional leading seconds field.
func NewCronParser() cron.Parser {
	return cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

func NewScheduler(lc fx.Lifecycle, cfg *config.Config, shipper service.LogShipperService) (*cron.Cron, error) {
	c := cron.New(cron.WithParser(NewCronParser()), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	schedule := cfg.Shipping.Schedule
	if _, err := c.AddFunc(schedule, shipJob(shipper)); err != nil {
		return nil, fmt.Errorf("invalid log shipping schedule %q: %w", schedule, err)
	}
	log.Info().Str("schedule", schedule).Msg("Scheduled log shipping job")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c, nil
}

func shipJob(shipper service.LogShipperService) func() {
	return func() {
		if err := shipper.ShipLogs(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error during scheduled log shipping")
		}
	}
}
