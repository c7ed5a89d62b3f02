package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlySpend(t *testing.T) {
	purchases, deposits := fixture()
	buckets := HourlySpend(Compute(purchases, deposits).Purchases)

	assert.Equal(t, HourBucket{Hour: 8, Sum: 350, Count: 1}, buckets[8])
	assert.Equal(t, HourBucket{Hour: 12, Sum: 350, Count: 2}, buckets[12])
	assert.Equal(t, HourBucket{Hour: 23, Sum: 100, Count: 1}, buckets[23])
	assert.Equal(t, HourBucket{Hour: 0}, buckets[0])
}

func TestWeekdayHourCounts(t *testing.T) {
	purchases, deposits := fixture()
	m := WeekdayHourCounts(Compute(purchases, deposits).Purchases)

	assert.Equal(t, 1, m[8][0])
	assert.Equal(t, 2, m[12][1])
	assert.Equal(t, 1, m[23][6])
	assert.Equal(t, 0, m[12][0])
}

func TestTopItems(t *testing.T) {
	purchases, deposits := fixture()
	rows := Compute(purchases, deposits).Purchases

	top := TopItems(rows, 2)
	require.Len(t, top, 2)
	assert.Equal(t, ItemCount{Item: "Coffee", Count: 2, Spent: 450}, top[0])
	assert.Equal(t, "Mate", top[1].Item)

	assert.Len(t, TopItems(rows, 0), 3)
	assert.Empty(t, TopItems(nil, 5))
}

func TestUniqueItems(t *testing.T) {
	purchases, deposits := fixture()
	assert.Equal(t, 3, UniqueItems(Compute(purchases, deposits).Purchases))
	assert.Equal(t, 0, UniqueItems(nil))
}

func TestDescribe(t *testing.T) {
	s := Describe([]int64{350, 150, 200, 100})
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, int64(800), s.Sum)
	assert.Equal(t, int64(100), s.Min)
	assert.Equal(t, int64(350), s.Max)
	assert.InDelta(t, 200.0, s.Mean, 1e-9)

	assert.Equal(t, Stats{}, Describe(nil))
}

func TestTables_Summary(t *testing.T) {
	purchases, deposits := fixture()
	s := Compute(purchases, deposits).Summary()

	assert.Equal(t, 4, s.Purchases.Count)
	assert.Equal(t, int64(1500), s.Deposits.Sum)
	assert.Equal(t, 3, s.UniqueItems)
	assert.Equal(t, int64(700), s.FinalBalance)
	assert.Equal(t, int64(-350), s.LowestBalance)
	assert.Equal(t, 1, s.NegativeEvents)

	assert.Equal(t, Summary{}, Compute(nil, nil).Summary())
}
