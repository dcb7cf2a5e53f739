package dataset

import (
	"context"
	"errors"
	"net/http"

	"github.com/wavelog/waveport/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrNoSource = errors.New("no dataset source configured")

type Params struct {
	fx.In

	Cfg config.Config
	Log *zap.Logger
}

// Service turns the configured dataset source into loaded records.
type Service struct {
	cfg    config.DatasetConfig
	log    *zap.Logger
	client *http.Client
}

func New(p Params) *Service {
	return &Service{
		cfg: p.Cfg.Dataset,
		log: p.Log.Named("dataset"),
		client: &http.Client{
			Timeout: p.Cfg.Dataset.Timeout,
		},
	}
}

// Acquire returns the raw dataset rows. A configured local file takes
// precedence; otherwise the archive is downloaded and extracted.
func (s *Service) Acquire(ctx context.Context) ([]Record, error) {
	path := s.cfg.File
	if path == "" {
		if s.cfg.URL == "" {
			return nil, ErrNoSource
		}

		s.log.Info("downloading dataset archive", zap.String("url", s.cfg.URL))
		archivePath, err := download(ctx, s.client, s.cfg.URL, s.cfg.Dir)
		if err != nil {
			return nil, err
		}

		s.log.Info("extracting dataset archive", zap.String("archive", archivePath))
		if err := extract(archivePath, s.cfg.Dir); err != nil {
			return nil, err
		}

		path, err = findCSV(s.cfg.Dir)
		if err != nil {
			return nil, err
		}
	}

	s.log.Info("loading dataset file", zap.String("path", path))
	records, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	s.log.Info("dataset loaded", zap.Int("rows", len(records)))
	return records, nil
}

var Module = fx.Module("dataset",
	fx.Provide(New),
)
