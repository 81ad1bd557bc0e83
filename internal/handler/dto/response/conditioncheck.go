package response

import (
	"time"

	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConditionCheckResponse struct {
	ID                uuid.UUID  `json:"id"`
	ReservationID     uuid.UUID  `json:"reservationId"`
	ItemID            uuid.UUID  `json:"itemId"`
	UploadedBy        uuid.UUID  `json:"uploadedBy"`
	CheckType         string     `json:"checkType"`
	PhotoURLs         []string   `json:"photoUrls"`
	Notes             *string    `json:"notes,omitempty"`
	AIAnalysis        *string    `json:"aiAnalysis,omitempty"`
	DamageDetected    *bool      `json:"damageDetected,omitempty"`
	DamageDescription *string    `json:"damageDescription,omitempty"`
	ConditionScore    *int32     `json:"conditionScore,omitempty"`
	IsApproved        bool       `json:"isApproved"`
	ApprovedBy        *uuid.UUID `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time `json:"approvedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type ConditionCheckListResponse struct {
	ConditionChecks []*ConditionCheckResponse `json:"conditionChecks"`
}

// ConditionCheckApprovalResponse wraps the approved record with a
// human-readable outcome message.
type ConditionCheckApprovalResponse struct {
	ConditionCheck *ConditionCheckResponse `json:"conditionCheck"`
	Message        string                  `json:"message"`
}

type ConditionCheckDeleteResponse struct {
	Success bool `json:"success"`
}

func FromConditionCheckView(cm *queries.ConditionCheckView) *ConditionCheckResponse {
	return &ConditionCheckResponse{
		ID:                cm.ID,
		ReservationID:     cm.ReservationID,
		ItemID:            cm.ItemID,
		UploadedBy:        cm.UploadedBy,
		CheckType:         cm.CheckType,
		PhotoURLs:         cm.PhotoURLs,
		Notes:             cm.Notes,
		AIAnalysis:        cm.AIAnalysis,
		DamageDetected:    cm.DamageDetected,
		DamageDescription: cm.DamageDescription,
		ConditionScore:    cm.ConditionScore,
		IsApproved:        cm.IsApproved,
		ApprovedBy:        cm.ApprovedBy,
		ApprovedAt:        cm.ApprovedAt,
		CreatedAt:         cm.CreatedAt,
		UpdatedAt:         cm.UpdatedAt,
	}
}

func FromConditionCheckList(items []*queries.ConditionCheckView) *ConditionCheckListResponse {
	resp := &ConditionCheckListResponse{
		ConditionChecks: make([]*ConditionCheckResponse, len(items)),
	}
	for i, cm := range items {
		resp.ConditionChecks[i] = FromConditionCheckView(cm)
	}
	return resp
}
