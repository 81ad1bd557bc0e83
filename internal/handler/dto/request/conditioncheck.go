package request

import (
	"rentmarket/internal/usecase/commands"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type UploadConditionCheckRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
	ItemID        uuid.UUID `json:"itemId" binding:"required"`
	CheckType     string    `json:"checkType" binding:"required,oneof=BEFORE_RENTAL AFTER_RENTAL"`
	Photos        []string  `json:"photos" binding:"required,min=1,dive,required"`
	Notes         string    `json:"notes" binding:"max=2000"`
}

func (r UploadConditionCheckRequest) ToCommand() commands.UploadConditionCheckRequest {
	return commands.UploadConditionCheckRequest{
		ReservationID: r.ReservationID,
		ItemID:        r.ItemID,
		CheckType:     r.CheckType,
		Photos:        r.Photos,
		Notes:         r.Notes,
	}
}

type UpdateConditionCheckRequest struct {
	Notes             *string `json:"notes" binding:"omitempty,max=2000"`
	AIAnalysis        *string `json:"aiAnalysis"`
	DamageDetected    *bool   `json:"damageDetected"`
	DamageDescription *string `json:"damageDescription"`
	ConditionScore    *int32  `json:"conditionScore" binding:"omitempty,min=1,max=10"`
}

func (r UpdateConditionCheckRequest) ToPatch() shared.EnrichmentPatch {
	return shared.EnrichmentPatch{
		Notes:             r.Notes,
		AIAnalysis:        r.AIAnalysis,
		DamageDetected:    r.DamageDetected,
		DamageDescription: r.DamageDescription,
		ConditionScore:    r.ConditionScore,
	}
}
