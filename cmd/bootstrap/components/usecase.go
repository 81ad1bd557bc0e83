package components

import (
	"rentmarket/internal/domain/pricing"
	"rentmarket/internal/notify"
	"rentmarket/internal/pkg/clock"
	"rentmarket/internal/pkg/config"
	"rentmarket/internal/usecase/commands"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/vision/claude"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingPolicy,
	fx.Annotate(
		NewEventPublisher,
		fx.As(new(commands.EventPublisher)),
	),
	fx.Annotate(
		NewConditionAnalyzer,
		fx.As(new(commands.ConditionAnalyzer)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewConditionCheckQueries,
		queries.NewReviewQueries,
		queries.NewNotificationQueries,
		queries.NewPricingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewConditionCheckUseCase,
		commands.NewReviewUseCase,
		commands.NewNotificationUseCase,
	),
)

func NewPricingPolicy(cfg config.Config) pricing.Policy {
	return pricing.Policy{
		ServiceFeePercent:   cfg.Pricing.ServiceFeePercent,
		ExpressLogisticsFee: cfg.Pricing.ExpressLogisticsFee,
	}
}

func NewEventPublisher(cfg config.Config) *notify.WebhookPublisher {
	return notify.NewWebhookPublisher(cfg.Webhook)
}

func NewConditionAnalyzer(cfg config.Config) *claude.ClaudeAnalyzer {
	return claude.NewClaudeAnalyzer(cfg.Vision)
}
