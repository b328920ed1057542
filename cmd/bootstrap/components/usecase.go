package components

import (
	"fmt"

	"gpark/internal/pkg/clock"
	"gpark/internal/pkg/config"
	"gpark/internal/pkg/jwt"
	"gpark/internal/pkg/password"
	"gpark/internal/usecase"
	"gpark/internal/usecase/commands"
	"gpark/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.AllocationPolicy {
		return commands.AllocationPolicy{RequireRate: cfg.Booking.RequireRate}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(cfg config.Config, jwtSvc *jwt.Service) (commands.AuthCommands, error) {
			if err := password.ValidateHash(cfg.Operator.PasswordHash); err != nil {
				return nil, fmt.Errorf("invalid OPERATOR_PASSWORD_HASH: %w", err)
			}
			return commands.NewAuthCommands(cfg.Operator.PasswordHash, jwtSvc), nil
		},
		commands.NewSpotCommands,
		commands.NewAllocationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSpotQueries,
		queries.NewAllocationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
