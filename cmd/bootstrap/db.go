package bootstrap

import (
	"context"

	"agendapay/internal/infra/migrations"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		func(pool *pgxpool.Pool) postgres.Pool { return pool },
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx := context.Background()
	dsn := cfg.DB.BuildDSN()

	if err := migrations.Up(ctx, dsn); err != nil {
		return nil, err
	}

	pool, cleanup, err := postgres.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
