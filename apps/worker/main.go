// The worker runs one full dataset refresh and exits. It carries no HTTP
// server or schedule loop; cron-style environments invoke it directly.
package main

import (
	"context"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/wavelog/waveport/internal/calendarday"
	"github.com/wavelog/waveport/internal/clock"
	"github.com/wavelog/waveport/internal/config"
	"github.com/wavelog/waveport/internal/dataset"
	"github.com/wavelog/waveport/internal/ingest"
	"github.com/wavelog/waveport/internal/logger"
	"github.com/wavelog/waveport/internal/port"
	"github.com/wavelog/waveport/internal/portcall"
	"github.com/wavelog/waveport/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	var exitCode int

	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		port.Module,
		calendarday.Module,
		portcall.Module,
		dataset.Module,
		ingest.Module,

		fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner, runner ingest.Runner, log *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						if _, err := runner.Run(context.Background()); err != nil {
							log.Error("refresh failed", zap.Error(err))
							exitCode = 1
						}
						_ = shutdowner.Shutdown()
					}()
					return nil
				},
			})
		}),
	)
	app.Run()

	os.Exit(exitCode)
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
