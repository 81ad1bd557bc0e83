package shared

import (
	"context"
	"time"

	"rentmarket/internal/domain/conditioncheck"
	"rentmarket/internal/domain/reservation"
	"rentmarket/internal/domain/review"
	"rentmarket/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	ConditionChecks() ConditionCheckRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ConditionCheckByID(ctx context.Context, id uuid.UUID) (*ConditionCheckSnapshot, error)
	ConditionCheckByType(ctx context.Context, reservationID uuid.UUID, checkType conditioncheck.CheckType) (*ConditionCheckSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	HasBlockingOverlap(ctx context.Context, tx db.DBTX, itemID uuid.UUID, start, end time.Time) (bool, error)
	// UpdateStatusFromPending transitions only rows still PENDING and reports
	// how many rows changed, so double-resolution is detectable.
	UpdateStatusFromPending(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) (int64, error)
	SetCheckUploaded(ctx context.Context, tx db.DBTX, id uuid.UUID, checkType conditioncheck.CheckType, uploaded bool) error
	// ApplyCheckApproval opens the rental gate for the approved check type and
	// advances the status, touching only rows the transition is legal for. It
	// reports how many rows changed; zero means the reservation was already
	// resolved.
	ApplyCheckApproval(ctx context.Context, tx db.DBTX, id uuid.UUID, checkType conditioncheck.CheckType) (int64, error)
}

type ConditionCheckRepository interface {
	Create(ctx context.Context, tx db.DBTX, check *conditioncheck.ConditionCheck) (uuid.UUID, error)
	// ApproveOnce approves only if still unapproved and reports rows changed.
	ApproveOnce(ctx context.Context, tx db.DBTX, id, approverID uuid.UUID, now time.Time) (int64, error)
	UpdateEnrichment(ctx context.Context, tx db.DBTX, id uuid.UUID, patch EnrichmentPatch) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rating int, comment string) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// SetResponseOnce writes the reviewee reply only if none exists yet.
	SetResponseOnce(ctx context.Context, tx db.DBTX, id uuid.UUID, response string, at time.Time) (int64, error)
	IncrementHelpful(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcItemRating(ctx context.Context, tx db.DBTX, itemID uuid.UUID) error
	RecalcUserRenterRating(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	RecalcUserLenderRating(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, topic string, payload []byte) error
	MarkRead(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) (int64, error)
}

// EnrichmentPatch carries the optional AI-analysis fields for a partial
// update; nil fields are left untouched.
type EnrichmentPatch struct {
	Notes             *string
	AIAnalysis        *string
	DamageDetected    *bool
	DamageDescription *string
	ConditionScore    *int32
}
