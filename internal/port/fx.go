package port

import (
	"github.com/wavelog/waveport/internal/port/repository"
	"github.com/wavelog/waveport/internal/port/service"
	"go.uber.org/fx"
)

var Module = fx.Module("port.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
