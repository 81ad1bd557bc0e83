package commands

import (
	"context"

	"rentmarket/internal/domain/conditioncheck"
)

// EventPublisher is the outbound webhook port. Publishing is best-effort:
// implementations log failures and never return them, so a dead endpoint
// cannot fail a committed operation.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any)
}

// ConditionAnalyzer produces AI damage analysis for condition-check photos.
type ConditionAnalyzer interface {
	AnalyzeCondition(ctx context.Context, photoURLs []string, notes string) (*conditioncheck.Analysis, error)
	Enabled() bool
}
