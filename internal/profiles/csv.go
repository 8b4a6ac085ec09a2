package profiles

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// PricePoint is one row of a price CSV: a time of day and a price.
type PricePoint struct {
	MinuteOfDay int
	Price       float64
}

// LoadPriceCSV reads a CSV with a "time,price" header where time is "HH:MM".
func LoadPriceCSV(path string) ([]PricePoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPrices(f)
}

func ReadPrices(r io.Reader) ([]PricePoint, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("price csv needs a header row and at least one data row")
	}

	points := make([]PricePoint, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			return nil, fmt.Errorf("price csv row needs time and price columns, got %v", rec)
		}
		mins, err := parseHHMM(rec[0])
		if err != nil {
			return nil, err
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", rec[1], err)
		}
		points = append(points, PricePoint{MinuteOfDay: mins, Price: price})
	}
	return points, nil
}

// MapPricesToTimes assigns each timestamp the price of the point whose time
// of day is nearest, wrapping around midnight.
func MapPricesToTimes(points []PricePoint, times []time.Time) ([]float64, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no price points")
	}
	out := make([]float64, len(times))
	for i, ts := range times {
		mins := ts.Hour()*60 + ts.Minute()
		best := points[0]
		bestDist := wrapDistance(mins, points[0].MinuteOfDay)
		for _, pt := range points[1:] {
			if d := wrapDistance(mins, pt.MinuteOfDay); d < bestDist {
				best, bestDist = pt, d
			}
		}
		out[i] = best.Price
	}
	return out, nil
}

// wrapDistance is the distance in minutes between two times of day on a 24h
// clock, taking the shorter way around.
func wrapDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if wrapped := 24*60 - d; wrapped < d {
		return wrapped
	}
	return d
}

func parseHHMM(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}
