package writerepo

import (
	"context"
	"time"

	"rentmarket/internal/domain/conditioncheck"
	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConditionCheckRepository struct{}

func NewConditionCheckRepository() *ConditionCheckRepository {
	return &ConditionCheckRepository{}
}

const createConditionCheckSQL = `
INSERT INTO condition_checks (id, reservation_id, item_id, uploaded_by, check_type, photos, notes)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
RETURNING id`

func (r *ConditionCheckRepository) Create(ctx context.Context, tx db.DBTX, check *conditioncheck.ConditionCheck) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createConditionCheckSQL,
		check.ID(),
		check.ReservationID(),
		check.ItemID(),
		check.UploadedBy(),
		check.CheckType().String(),
		check.Photos(),
		check.Notes(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create condition check", err)
	}
	return id, nil
}

const approveOnceSQL = `
UPDATE condition_checks
SET is_approved = true, approved_by = $2, approved_at = $3, updated_at = now()
WHERE id = $1 AND is_approved = false`

func (r *ConditionCheckRepository) ApproveOnce(ctx context.Context, tx db.DBTX, id, approverID uuid.UUID, now time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, approveOnceSQL, id, approverID, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to approve condition check", err)
	}
	return tag.RowsAffected(), nil
}

const updateEnrichmentSQL = `
UPDATE condition_checks
SET notes              = COALESCE($2::text, notes),
    ai_analysis        = COALESCE($3::text, ai_analysis),
    damage_detected    = COALESCE($4::boolean, damage_detected),
    damage_description = COALESCE($5::text, damage_description),
    condition_score    = COALESCE($6::int, condition_score),
    updated_at         = now()
WHERE id = $1`

func (r *ConditionCheckRepository) UpdateEnrichment(ctx context.Context, tx db.DBTX, id uuid.UUID, patch shared.EnrichmentPatch) error {
	tag, err := tx.Exec(ctx, updateEnrichmentSQL,
		id,
		patch.Notes,
		patch.AIAnalysis,
		patch.DamageDetected,
		patch.DamageDescription,
		patch.ConditionScore,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update condition check", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("condition check not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ConditionCheckRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM condition_checks WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete condition check", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("condition check not found", nil, infra.KindNotFound)
	}
	return nil
}
