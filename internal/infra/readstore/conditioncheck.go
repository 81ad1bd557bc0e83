package readstore

import (
	"context"

	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"
	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ConditionCheckReadStore struct {
	db db.DBTX
}

func NewConditionCheckReadStore(dbtx db.DBTX) *ConditionCheckReadStore {
	return &ConditionCheckReadStore{db: dbtx}
}

const conditionCheckColumns = `
SELECT id, reservation_id, item_id, uploaded_by, check_type, photos, notes,
       ai_analysis, damage_detected, damage_description, condition_score,
       is_approved, approved_by, approved_at, created_at, updated_at
FROM condition_checks`

func (s *ConditionCheckReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ConditionCheckView, error) {
	row := s.db.QueryRow(ctx, conditionCheckColumns+` WHERE id = $1`, id)
	view, err := scanConditionCheck(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("condition check not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get condition check", err)
	}
	return view, nil
}

func (s *ConditionCheckReadStore) FindByReservationAndType(ctx context.Context, reservationID uuid.UUID, checkType string) (*queries.ConditionCheckView, error) {
	row := s.db.QueryRow(ctx, conditionCheckColumns+` WHERE reservation_id = $1 AND check_type = $2`, reservationID, checkType)
	view, err := scanConditionCheck(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("condition check not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get condition check by type", err)
	}
	return view, nil
}

func (s *ConditionCheckReadStore) FindByReservation(ctx context.Context, reservationID uuid.UUID) ([]*queries.ConditionCheckView, error) {
	rows, err := s.db.Query(ctx, conditionCheckColumns+` WHERE reservation_id = $1 ORDER BY created_at`, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list condition checks", err)
	}
	defer rows.Close()

	var views []*queries.ConditionCheckView
	for rows.Next() {
		view, serr := scanConditionCheck(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan condition check row", serr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read condition check rows", err)
	}
	return views, nil
}

func scanConditionCheck(row pgx.Row) (*queries.ConditionCheckView, error) {
	var (
		view              queries.ConditionCheckView
		notes             pgtype.Text
		aiAnalysis        pgtype.Text
		damageDetected    pgtype.Bool
		damageDescription pgtype.Text
		conditionScore    pgtype.Int4
		approvedBy        pgtype.UUID
		approvedAt        pgtype.Timestamptz
		createdAt         pgtype.Timestamptz
		updatedAt         pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ReservationID, &view.ItemID, &view.UploadedBy, &view.CheckType,
		&view.PhotoURLs, &notes,
		&aiAnalysis, &damageDetected, &damageDescription, &conditionScore,
		&view.IsApproved, &approvedBy, &approvedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.AIAnalysis = pgconv.StringPtrFromPgtype(aiAnalysis)
	view.DamageDetected = pgconv.BoolPtrFromPgtype(damageDetected)
	view.DamageDescription = pgconv.StringPtrFromPgtype(damageDescription)
	view.ConditionScore = pgconv.Int32PtrFromPgtype(conditionScore)
	view.ApprovedBy = pgconv.UUIDPtrFromPgtype(approvedBy)
	view.ApprovedAt = pgconv.TimePtrFromPgtype(approvedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
