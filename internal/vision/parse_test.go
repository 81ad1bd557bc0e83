//go:build unit

package vision_test

import (
	"testing"

	"rentmarket/internal/vision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("plain JSON response", func(t *testing.T) {
		analysis, err := vision.ParseAnalysis(`{
			"summary": "Light wear on the grip, otherwise clean.",
			"damageDetected": true,
			"damageDescription": "Small scratch near the lens mount.",
			"conditionScore": 8
		}`)

		require.NoError(t, err)
		require.NotNil(t, analysis.Summary)
		assert.Equal(t, "Light wear on the grip, otherwise clean.", *analysis.Summary)
		require.NotNil(t, analysis.DamageDetected)
		assert.True(t, *analysis.DamageDetected)
		require.NotNil(t, analysis.DamageDescription)
		assert.Equal(t, "Small scratch near the lens mount.", *analysis.DamageDescription)
		require.NotNil(t, analysis.ConditionScore)
		assert.Equal(t, int32(8), *analysis.ConditionScore)
	})

	t.Run("fenced JSON is unwrapped", func(t *testing.T) {
		analysis, err := vision.ParseAnalysis("```json\n{\"summary\": \"Like new.\", \"damageDetected\": false, \"damageDescription\": null, \"conditionScore\": 10}\n```")

		require.NoError(t, err)
		require.NotNil(t, analysis.Summary)
		assert.Equal(t, "Like new.", *analysis.Summary)
		require.NotNil(t, analysis.DamageDetected)
		assert.False(t, *analysis.DamageDetected)
		assert.Nil(t, analysis.DamageDescription)
	})

	t.Run("bare fence without language tag", func(t *testing.T) {
		analysis, err := vision.ParseAnalysis("```\n{\"summary\": \"ok\", \"damageDetected\": false}\n```")

		require.NoError(t, err)
		require.NotNil(t, analysis.Summary)
		assert.Equal(t, "ok", *analysis.Summary)
	})

	t.Run("prose response is rejected", func(t *testing.T) {
		_, err := vision.ParseAnalysis("The item looks fine to me overall.")

		assert.ErrorIs(t, err, vision.ErrUnparsableResponse)
	})

	t.Run("empty strings become nil fields", func(t *testing.T) {
		analysis, err := vision.ParseAnalysis(`{"summary": "", "damageDetected": false, "damageDescription": "", "conditionScore": null}`)

		require.NoError(t, err)
		assert.Nil(t, analysis.Summary)
		assert.Nil(t, analysis.DamageDescription)
		assert.Nil(t, analysis.ConditionScore)
	})
}
