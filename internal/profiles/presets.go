// Package profiles builds the input series for an optimization run: built-in
// tariff and demand presets, time-of-use tariffs, prices loaded from CSV and
// carbon intensity fetched from the national forecast API.
package profiles

import (
	"fmt"
	"time"
)

// TimeIndex returns n consecutive timestamps starting at start.
func TimeIndex(start time.Time, n int, step time.Duration) []time.Time {
	times := make([]time.Time, n)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * step)
	}
	return times
}

// Flat returns n copies of value.
func Flat(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// PeakOffPeakImport prices the 16:00-20:00 evening peak at peak and every
// other hour at offPeak.
func PeakOffPeakImport(times []time.Time, peak, offPeak float64) []float64 {
	out := make([]float64, len(times))
	for i, ts := range times {
		if h := ts.Hour(); h >= 16 && h < 20 {
			out[i] = peak
		} else {
			out[i] = offPeak
		}
	}
	return out
}

// EveningPeakDemand models a household that idles at base and peaks between
// 17:00 and 21:00.
func EveningPeakDemand(times []time.Time, peak, base float64) []float64 {
	out := make([]float64, len(times))
	for i, ts := range times {
		if h := ts.Hour(); h >= 17 && h < 21 {
			out[i] = peak
		} else {
			out[i] = base
		}
	}
	return out
}

// TOUPeriod is one time-of-use tariff band: [StartHour, EndHour) at Price.
type TOUPeriod struct {
	StartHour int
	EndHour   int
	Price     float64
}

// TOUImport prices each timestamp by the first band covering its hour.
// Every hour of the day must be covered by some band.
func TOUImport(times []time.Time, periods []TOUPeriod) ([]float64, error) {
	out := make([]float64, len(times))
	for i, ts := range times {
		h := ts.Hour()
		found := false
		for _, band := range periods {
			if h >= band.StartHour && h < band.EndHour {
				out[i] = band.Price
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("time-of-use periods do not cover hour %d", h)
		}
	}
	return out, nil
}
