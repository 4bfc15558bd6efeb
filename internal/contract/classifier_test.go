package contract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trungle-dev/renty/internal/contract"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	endIn := func(d time.Duration) *time.Time {
		end := now.Add(d)
		return &end
	}

	tests := []struct {
		name     string
		status   contract.Status
		endDate  *time.Time
		want     contract.Category
	}{
		{
			name:   "TerminatedWinsOverDates",
			status: contract.StatusTerminated,
			// An end date far in the future is irrelevant once terminated.
			endDate: endIn(365 * 24 * time.Hour),
			want:    contract.CategoryTerminated,
		},
		{
			name:    "CancelledCountsAsTerminated",
			status:  contract.StatusCancelled,
			endDate: nil,
			want:    contract.CategoryTerminated,
		},
		{
			name:    "IndefiniteRentalIsActive",
			status:  contract.StatusActive,
			endDate: nil,
			want:    contract.CategoryActive,
		},
		{
			name:    "WellBeforeEndIsActive",
			status:  contract.StatusActive,
			endDate: endIn(90 * 24 * time.Hour),
			want:    contract.CategoryActive,
		},
		{
			name:    "ExactlyThirtyDaysIsExpiring",
			status:  contract.StatusActive,
			endDate: endIn(contract.ExpiryWindow),
			want:    contract.CategoryExpiring,
		},
		{
			name:    "ThirtyDaysPlusOneMilliIsActive",
			status:  contract.StatusActive,
			endDate: endIn(contract.ExpiryWindow + time.Millisecond),
			want:    contract.CategoryActive,
		},
		{
			name:    "EndingRightNowIsExpiring",
			status:  contract.StatusActive,
			endDate: endIn(0),
			want:    contract.CategoryExpiring,
		},
		{
			name:    "OneMilliPastEndIsExpired",
			status:  contract.StatusActive,
			endDate: endIn(-time.Millisecond),
			want:    contract.CategoryExpired,
		},
		{
			name:    "StoredExpiredIsUnknown",
			status:  contract.StatusExpired,
			endDate: endIn(-24 * time.Hour),
			want:    contract.CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &contract.Contract{Status: tt.status, EndDate: tt.endDate}

			got := contract.Classify(c, now)
			assert.Equal(t, tt.want, got)

			// Pure: same inputs, same answer.
			assert.Equal(t, got, contract.Classify(c, now))
		})
	}
}
