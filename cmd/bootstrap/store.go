package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"gpark/internal/infra/db"
	"gpark/internal/infra/store/filestore"
	"gpark/internal/infra/store/memstore"
	"gpark/internal/infra/store/pgstore"
	"gpark/internal/infra/store/s3store"
	"gpark/internal/pkg/config"
	"gpark/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStateStore,
	),
)

// NewStateStore picks the persistence backend named by STORE_DRIVER.
func NewStateStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.StateStore, error) {
	ctx := context.Background()

	switch cfg.Store.Driver {
	case config.StoreDriverFile:
		logger.Info("using file state store", "dir", cfg.Store.DataDir)
		return filestore.New(cfg.Store.DataDir, logger), nil

	case config.StoreDriverPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("using postgres state store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return pgstore.New(pool, logger), nil

	case config.StoreDriverS3:
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required when STORE_DRIVER=%s", config.StoreDriverS3)
		}
		client, err := s3store.NewClient(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 client: %w", err)
		}
		logger.Info("using s3 state store", "bucket", cfg.S3.Bucket, "key", cfg.S3.Key)
		return s3store.New(client, cfg.S3.Bucket, cfg.S3.Key, logger), nil

	case config.StoreDriverMemory:
		logger.Warn("using in-memory state store, nothing survives a restart")
		return memstore.New(nil), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}
