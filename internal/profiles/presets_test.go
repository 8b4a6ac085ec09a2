package profiles

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func midnight() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestTimeIndex(t *testing.T) {
	times := TimeIndex(midnight(), 4, 30*time.Minute)
	require.Len(t, times, 4)
	assert.Equal(t, midnight(), times[0])
	assert.Equal(t, midnight().Add(90*time.Minute), times[3])
}

func TestPeakOffPeakImport(t *testing.T) {
	times := TimeIndex(midnight(), 24, time.Hour)
	prices := PeakOffPeakImport(times, 30, 10)

	for h, price := range prices {
		if h >= 16 && h < 20 {
			assert.Equal(t, 30.0, price, "hour %d", h)
		} else {
			assert.Equal(t, 10.0, price, "hour %d", h)
		}
	}
}

func TestEveningPeakDemand(t *testing.T) {
	times := TimeIndex(midnight(), 24, time.Hour)
	demand := EveningPeakDemand(times, 2.0, 0.5)

	assert.Equal(t, 0.5, demand[16])
	assert.Equal(t, 2.0, demand[17])
	assert.Equal(t, 2.0, demand[20])
	assert.Equal(t, 0.5, demand[21])
}

func TestTOUImport(t *testing.T) {
	times := TimeIndex(midnight(), 24, time.Hour)
	periods := []TOUPeriod{
		{StartHour: 0, EndHour: 6, Price: 12},
		{StartHour: 6, EndHour: 16, Price: 30},
		{StartHour: 16, EndHour: 19, Price: 40},
		{StartHour: 19, EndHour: 24, Price: 25},
	}

	prices, err := TOUImport(times, periods)
	require.NoError(t, err)
	assert.Equal(t, 12.0, prices[0])
	assert.Equal(t, 30.0, prices[6])
	assert.Equal(t, 40.0, prices[18])
	assert.Equal(t, 25.0, prices[23])
}

func TestTOUImportUncoveredHour(t *testing.T) {
	times := TimeIndex(midnight(), 24, time.Hour)
	_, err := TOUImport(times, []TOUPeriod{{StartHour: 0, EndHour: 12, Price: 10}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cover")
}

func TestReadPricesAndMapToTimes(t *testing.T) {
	csvData := "time,price\n00:00,12.5\n08:00,25\n17:30,40\n"
	points, err := ReadPrices(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 0, points[0].MinuteOfDay)
	assert.Equal(t, 17*60+30, points[2].MinuteOfDay)

	times := TimeIndex(midnight(), 24, time.Hour)
	prices, err := MapPricesToTimes(points, times)
	require.NoError(t, err)

	assert.Equal(t, 12.5, prices[0])  // 00:00 exact
	assert.Equal(t, 25.0, prices[8])  // 08:00 exact
	assert.Equal(t, 40.0, prices[18]) // 18:00 nearest 17:30
	assert.Equal(t, 12.5, prices[23]) // 23:00 wraps to 00:00
}

func TestReadPricesRejectsBadRows(t *testing.T) {
	_, err := ReadPrices(strings.NewReader("time,price\n25:00,10\n"))
	require.Error(t, err)

	_, err = ReadPrices(strings.NewReader("time,price\n08:00,abc\n"))
	require.Error(t, err)

	_, err = ReadPrices(strings.NewReader("time,price\n"))
	require.Error(t, err)
}
