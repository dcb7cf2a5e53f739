package portcall

import (
	"github.com/wavelog/waveport/internal/portcall/repository"
	"github.com/wavelog/waveport/internal/portcall/service"
	"go.uber.org/fx"
)

var Module = fx.Module("portcall.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
