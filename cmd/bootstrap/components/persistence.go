package components

import (
	"context"

	"gpark/internal/infra/uow"
	"gpark/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

// NewUnitOfWork loads the persisted state once; a corrupt store stops startup.
func NewUnitOfWork(store shared.StateStore) (*uow.StateUoW, error) {
	return uow.NewStateUoW(context.Background(), store)
}
