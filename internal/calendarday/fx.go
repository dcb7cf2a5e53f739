package calendarday

import (
	"github.com/wavelog/waveport/internal/calendarday/repository"
	"github.com/wavelog/waveport/internal/calendarday/service"
	"go.uber.org/fx"
)

var Module = fx.Module("calendarday.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
