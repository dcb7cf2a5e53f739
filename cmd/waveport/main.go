package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/wavelog/waveport/internal/calendarday"
	"github.com/wavelog/waveport/internal/clock"
	"github.com/wavelog/waveport/internal/config"
	"github.com/wavelog/waveport/internal/dataset"
	"github.com/wavelog/waveport/internal/ingest"
	"github.com/wavelog/waveport/internal/logger"
	"github.com/wavelog/waveport/internal/port"
	"github.com/wavelog/waveport/internal/portcall"
	"github.com/wavelog/waveport/internal/scheduler"
	"github.com/wavelog/waveport/internal/server"
	"github.com/wavelog/waveport/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Functional domains
		port.Module,
		calendarday.Module,
		portcall.Module,
		dataset.Module,
		ingest.Module,

		scheduler.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
