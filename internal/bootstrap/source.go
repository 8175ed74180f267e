package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/herd/internal/config"
	"github.com/mamadbah2/herd/internal/repository/mongodb"
	"github.com/mamadbah2/herd/internal/repository/sheets"
	"github.com/mamadbah2/herd/internal/service/reporting"
)

const connectTimeout = 10 * time.Second

// Backend bundles the population source and report store chosen by configuration.
type Backend struct {
	Source reporting.PopulationSource
	Store  reporting.ReportStore
	close  func(ctx context.Context) error
}

// Close releases backend connections.
func (b *Backend) Close(ctx context.Context) error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close(ctx)
}

// OpenBackend connects the configured population source. With archiving
// enabled MongoDB also serves as the report store.
func OpenBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Reporting.Source {
	case config.SourceMongoDB:
		repo, err := openMongo(ctx, cfg.MongoDB, logger)
		if err != nil {
			return nil, fmt.Errorf("open mongodb backend: %w", err)
		}
		backend := &Backend{Source: repo, close: repo.Close}
		if cfg.Reporting.Archive {
			backend.Store = repo
		}
		return backend, nil
	case config.SourceSheets:
		repo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, logger.Named("repo.sheets"))
		if err != nil {
			return nil, fmt.Errorf("open sheets backend: %w", err)
		}
		backend := &Backend{Source: sheets.NewCattleSource(repo, cfg.Sheets.CattleRange, logger.Named("repo.sheets.cattle"))}

		if cfg.Reporting.Archive {
			store, err := openMongo(ctx, cfg.MongoDB, logger)
			if err != nil {
				return nil, fmt.Errorf("open report archive: %w", err)
			}
			backend.Store = store
			backend.close = store.Close
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unsupported cattle source %q", cfg.Reporting.Source)
	}
}

func openMongo(ctx context.Context, cfg config.MongoDBConfig, logger *zap.Logger) (*mongodb.MongoDBRepository, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return mongodb.NewMongoDBRepository(ctx, cfg.URI, cfg.DBName, logger.Named("repo.mongodb"))
}
