package components

import (
	"rental-core/internal/infra/db"
	"rental-core/internal/infra/notify"
	"rental-core/internal/infra/readstore"
	"rental-core/internal/infra/uow"
	"rental-core/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Constructors already return the port types the usecases consume.
		uow.NewPostgresUoW,
		notify.NewLogNotifier,
		// Read-side store for queries
		fx.Annotate(
			readstore.NewStore,
			fx.As(new(queries.ReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
