package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	calendardomain "github.com/wavelog/waveport/internal/calendarday/domain"
	portdomain "github.com/wavelog/waveport/internal/port/domain"
	portcalldomain "github.com/wavelog/waveport/internal/portcall/domain"
	pkgdb "github.com/wavelog/waveport/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    portcalldomain.Repository
	PortSvc portdomain.Service
}

type Service struct {
	log     *zap.Logger
	repo    portcalldomain.Repository
	genID   *snowflake.Node
	portSvc portdomain.Service
}

func New(p Params) portcalldomain.Service {
	return &Service{
		log:     p.Log.Named("portcall.service"),
		repo:    p.Repo,
		genID:   p.GenID,
		portSvc: p.PortSvc,
	}
}

func (s *Service) EnsureAll(ctx context.Context, db *gorm.DB, candidates []portcalldomain.Candidate) (portcalldomain.Result, error) {
	var result portcalldomain.Result
	now := time.Now().UTC()

	for _, candidate := range candidates {
		if candidate.Date.IsZero() {
			continue
		}

		portID, err := s.portSvc.ResolveID(ctx, db, candidate.PortName, candidate.Country)
		if err != nil {
			return result, err
		}
		if portID == 0 {
			// Port was excluded from registry population upstream; the row is
			// dropped, not treated as an error.
			result.SkippedUnresolved++
			s.log.Debug("skipping row for unregistered port",
				zap.String("port", candidate.PortName),
				zap.String("country", candidate.Country),
			)
			continue
		}

		date := calendardomain.Truncate(candidate.Date)
		exists, err := s.repo.Exists(ctx, db, portID, date)
		if err != nil {
			return result, err
		}
		if exists {
			// First write wins: a stored (port, date) pair is never rewritten.
			result.SkippedExisting++
			continue
		}

		call := &portcalldomain.PortCall{
			ID:        s.genID.Generate(),
			PortID:    portID,
			Date:      date,
			CreatedAt: now,
		}
		call.ApplyMetrics(candidate.Metrics)

		if err := s.repo.Insert(ctx, db, call); err != nil {
			if pkgdb.IsDuplicateKeyErr(err) {
				result.SkippedExisting++
				continue
			}
			return result, err
		}
		result.Inserted++
	}

	return result, nil
}
