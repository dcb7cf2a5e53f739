package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	gocache "github.com/patrickmn/go-cache"
	portdomain "github.com/wavelog/waveport/internal/port/domain"
	pkgdb "github.com/wavelog/waveport/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  portdomain.Repository
}

type Service struct {
	log   *zap.Logger
	repo  portdomain.Repository
	genID *snowflake.Node

	// Ports are never updated or deleted, so resolved IDs stay valid for the
	// lifetime of the process.
	idCache *gocache.Cache
}

func New(p Params) portdomain.Service {
	return &Service{
		log:     p.Log.Named("port.service"),
		repo:    p.Repo,
		genID:   p.GenID,
		idCache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

func (s *Service) EnsureAll(ctx context.Context, db *gorm.DB, candidates []portdomain.Port) (int, error) {
	seen := make(map[string]struct{}, len(candidates))
	inserted := 0

	for _, candidate := range candidates {
		name := strings.TrimSpace(candidate.Name)
		country := strings.TrimSpace(candidate.Country)
		iso3 := strings.TrimSpace(candidate.ISO3)
		if name == "" || country == "" || iso3 == "" {
			continue
		}

		key := cacheKey(name, country)
		if _, dup := seen[key]; dup {
			// Same (name, country) later in the batch: first-seen ISO3 wins.
			continue
		}
		seen[key] = struct{}{}

		existing, err := s.repo.FindByNameCountry(ctx, db, name, country)
		if err != nil {
			return inserted, err
		}
		if existing != nil {
			s.idCache.SetDefault(key, existing.ID)
			continue
		}

		port := &portdomain.Port{
			ID:        s.genID.Generate(),
			Name:      name,
			Country:   country,
			ISO3:      iso3,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.Insert(ctx, db, port); err != nil {
			if pkgdb.IsDuplicateKeyErr(err) {
				// Lost a race with a concurrent run; the stored row wins.
				continue
			}
			return inserted, err
		}
		s.idCache.SetDefault(key, port.ID)
		inserted++
	}

	return inserted, nil
}

func (s *Service) ResolveID(ctx context.Context, db *gorm.DB, name, country string) (snowflake.ID, error) {
	key := cacheKey(name, country)
	if cached, ok := s.idCache.Get(key); ok {
		return cached.(snowflake.ID), nil
	}

	port, err := s.repo.FindByNameCountry(ctx, db, name, country)
	if err != nil {
		return 0, err
	}
	if port == nil {
		return 0, nil
	}
	s.idCache.SetDefault(key, port.ID)
	return port.ID, nil
}

func cacheKey(name, country string) string {
	return name + "\x1f" + country
}
