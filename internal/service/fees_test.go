package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vehicle-rental-api/internal/domain"
)

func TestCalculateReturnFees(t *testing.T) {
	expected := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("On-time return in good condition has no fees", func(t *testing.T) {
		fees := CalculateReturnFees(expected, expected, 10000, domain.ConditionGood)
		assert.Equal(t, int64(0), fees.LateFeeCents)
		assert.Equal(t, int64(0), fees.DamageFeeCents)
		assert.True(t, fees.InspectionApproved)
	})

	t.Run("Early return has no late fee", func(t *testing.T) {
		fees := CalculateReturnFees(expected, expected.AddDate(0, 0, -2), 10000, domain.ConditionExcellent)
		assert.Equal(t, int64(0), fees.LateFeeCents)
		assert.True(t, fees.InspectionApproved)
	})

	t.Run("Late return pays 1.5x daily rate per late day", func(t *testing.T) {
		fees := CalculateReturnFees(expected, expected.AddDate(0, 0, 3), 10000, domain.ConditionGood)
		assert.Equal(t, int64(45000), fees.LateFeeCents)
	})

	t.Run("Odd rate keeps integer math exact", func(t *testing.T) {
		// 1 day late at 33.33/day: 3333 * 3 / 2 = 4999, truncated.
		fees := CalculateReturnFees(expected, expected.AddDate(0, 0, 1), 3333, domain.ConditionGood)
		assert.Equal(t, int64(4999), fees.LateFeeCents)
	})

	t.Run("Fair condition charges flat damage fee", func(t *testing.T) {
		fees := CalculateReturnFees(expected, expected, 10000, domain.ConditionFair)
		assert.Equal(t, int64(50000), fees.DamageFeeCents)
		assert.False(t, fees.InspectionApproved)
	})

	t.Run("Poor condition charges larger damage fee", func(t *testing.T) {
		fees := CalculateReturnFees(expected, expected, 10000, domain.ConditionPoor)
		assert.Equal(t, int64(200000), fees.DamageFeeCents)
		assert.False(t, fees.InspectionApproved)
	})

	t.Run("Late and damaged fees stack", func(t *testing.T) {
		fees := CalculateReturnFees(expected, expected.AddDate(0, 0, 2), 20000, domain.ConditionPoor)
		assert.Equal(t, int64(60000), fees.LateFeeCents)
		assert.Equal(t, int64(200000), fees.DamageFeeCents)
	})
}
