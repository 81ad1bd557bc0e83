//go:build unit

package conditioncheck_test

import (
	"testing"
	"time"

	"rentmarket/internal/domain/conditioncheck"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheck(t *testing.T) *conditioncheck.ConditionCheck {
	t.Helper()
	c, err := conditioncheck.NewConditionCheck(
		uuid.New(), uuid.New(), uuid.New(),
		conditioncheck.CheckBeforeRental,
		[]string{"a.jpg", "b.jpg", "c.jpg"},
		"scratches on the left side",
	)
	require.NoError(t, err)
	return c
}

func TestNewConditionCheck(t *testing.T) {
	t.Run("valid check", func(t *testing.T) {
		c := newCheck(t)
		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.False(t, c.IsApproved())
		assert.Nil(t, c.ApprovedAt())
		assert.Len(t, c.Photos(), 3)
	})

	t.Run("requires at least one photo", func(t *testing.T) {
		_, err := conditioncheck.NewConditionCheck(
			uuid.New(), uuid.New(), uuid.New(),
			conditioncheck.CheckBeforeRental, nil, "",
		)
		assert.ErrorIs(t, err, conditioncheck.ErrNoPhotos)
	})
}

func TestNewCheckType(t *testing.T) {
	for _, valid := range []string{"BEFORE_RENTAL", "AFTER_RENTAL"} {
		ct, err := conditioncheck.NewCheckType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, ct.String())
	}

	_, err := conditioncheck.NewCheckType("DURING_RENTAL")
	assert.ErrorIs(t, err, conditioncheck.ErrInvalidCheckType)
}

func TestApprove(t *testing.T) {
	t.Run("records approver and timestamp", func(t *testing.T) {
		c := newCheck(t)
		approver := uuid.New()
		now := time.Now()

		require.NoError(t, c.Approve(approver, now))

		assert.True(t, c.IsApproved())
		require.NotNil(t, c.ApprovedAt())
		assert.Equal(t, now, *c.ApprovedAt())
		require.NotNil(t, c.ApprovedBy())
		assert.Equal(t, approver, *c.ApprovedBy())
	})

	t.Run("approval is terminal", func(t *testing.T) {
		c := newCheck(t)
		require.NoError(t, c.Approve(uuid.New(), time.Now()))
		assert.ErrorIs(t, c.Approve(uuid.New(), time.Now()), conditioncheck.ErrAlreadyApproved)
	})
}

func TestCanBeDeletedBy(t *testing.T) {
	uploader := uuid.New()
	build := func(t *testing.T) *conditioncheck.ConditionCheck {
		c, err := conditioncheck.NewConditionCheck(
			uuid.New(), uuid.New(), uploader,
			conditioncheck.CheckAfterRental,
			[]string{"x.jpg"}, "",
		)
		require.NoError(t, err)
		return c
	}

	t.Run("uploader may delete unapproved check", func(t *testing.T) {
		assert.NoError(t, build(t).CanBeDeletedBy(uploader))
	})

	t.Run("others may not delete", func(t *testing.T) {
		assert.ErrorIs(t, build(t).CanBeDeletedBy(uuid.New()), conditioncheck.ErrNotUploader)
	})

	t.Run("approved checks are immutable evidence", func(t *testing.T) {
		c := build(t)
		require.NoError(t, c.Approve(uuid.New(), time.Now()))
		assert.ErrorIs(t, c.CanBeDeletedBy(uploader), conditioncheck.ErrApprovedImmutable)
	})
}
