package credit_test

import (
	"testing"
	"time"

	"credit-application/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	day := time.Date(2026, 11, 2, 15, 30, 0, 0, time.UTC)
	c := credit.New(decimal.RequireFromString("500.0"), day, 5, 1)

	assert.NotEqual(t, uuid.Nil, c.CreditCode)
	assert.Equal(t, credit.StatusInProgress, c.Status)
	assert.Equal(t, date(2026, 11, 2), c.DayFirstInstallment, "Clock part is dropped")
	assert.Equal(t, 5, c.NumberOfInstallments)
	assert.Equal(t, int64(1), c.OwnerID())
	assert.Zero(t, c.ID)
	assert.True(t, c.OwnedBy(1))
	assert.False(t, c.OwnedBy(2))
}

func TestNew_UniqueCodes(t *testing.T) {
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		c := credit.New(decimal.NewFromInt(1), date(2026, 11, 1), 1, 1)
		assert.False(t, seen[c.CreditCode])
		seen[c.CreditCode] = true
	}
}

func TestOwnerIDWithoutCustomer(t *testing.T) {
	c := &credit.Credit{}
	assert.Equal(t, int64(0), c.OwnerID())
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{"plain", date(2026, 10, 17), 3, date(2027, 1, 17)},
		{"clamps to february", date(2027, 1, 31), 1, date(2027, 2, 28)},
		{"clamps to leap february", date(2028, 1, 31), 1, date(2028, 2, 29)},
		{"clamps to 30 day month", date(2026, 8, 31), 1, date(2026, 9, 30)},
		{"november end plus three", date(2026, 11, 30), 3, date(2027, 2, 28)},
		{"year rollover", date(2026, 12, 15), 14, date(2028, 2, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, credit.AddMonths(tt.from, tt.n))
		})
	}
}

func TestCivilDate(t *testing.T) {
	local := time.FixedZone("BRT", -3*60*60)

	assert.Equal(t, date(2026, 10, 17), credit.CivilDate(time.Date(2026, 10, 17, 20, 59, 0, 0, local)))
	assert.Equal(t, date(2026, 10, 18), credit.CivilDate(time.Date(2026, 10, 17, 21, 0, 0, 0, local)),
		"late evening west of UTC is already the next UTC day")
}
