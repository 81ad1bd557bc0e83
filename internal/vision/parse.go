package vision

import (
	"encoding/json"
	"strings"

	"rentmarket/internal/domain/conditioncheck"
	"rentmarket/internal/pkg/errs"
)

var ErrUnparsableResponse = errs.New("vision response is not valid JSON")

type analysisPayload struct {
	Summary           string  `json:"summary"`
	DamageDetected    bool    `json:"damageDetected"`
	DamageDescription *string `json:"damageDescription"`
	ConditionScore    *int32  `json:"conditionScore"`
}

// ParseAnalysis decodes a model response into the condition-check enrichment
// fields. Markdown code fences around the JSON are tolerated.
func ParseAnalysis(raw string) (*conditioncheck.Analysis, error) {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		body = strings.TrimSuffix(strings.TrimSpace(body), "```")
		body = strings.TrimSpace(body)
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, errs.Mark(err, ErrUnparsableResponse)
	}

	analysis := &conditioncheck.Analysis{
		DamageDetected: &payload.DamageDetected,
		ConditionScore: payload.ConditionScore,
	}
	if payload.Summary != "" {
		analysis.Summary = &payload.Summary
	}
	if payload.DamageDescription != nil && *payload.DamageDescription != "" {
		analysis.DamageDescription = payload.DamageDescription
	}
	return analysis, nil
}
