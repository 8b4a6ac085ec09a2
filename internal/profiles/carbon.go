package profiles

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// CarbonClient fetches grid carbon intensity forecasts from the NESO carbon
// intensity API (carbonintensity.org.uk). The API serves half-hourly
// settlement periods; no key is required.
type CarbonClient struct {
	BaseURL string
	Client  *http.Client
}

// NewCarbonClient creates a client. If baseURL is empty, the public API
// endpoint is used.
func NewCarbonClient(baseURL string) *CarbonClient {
	if baseURL == "" {
		baseURL = "https://api.carbonintensity.org.uk"
	}
	return &CarbonClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IntensityPeriod is one half-hour settlement period of the forecast.
type IntensityPeriod struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Forecast float64   `json:"forecast"`
	Actual   *float64  `json:"actual,omitempty"`
}

// CarbonAPIError represents a non-2xx response from the carbon intensity API.
type CarbonAPIError struct {
	StatusCode int
	Message    string
}

func (e *CarbonAPIError) Error() string {
	return fmt.Sprintf("carbon intensity api: status %d: %s", e.StatusCode, e.Message)
}

const carbonTimeFormat = "2006-01-02T15:04Z"

// GetIntensity fetches intensity periods overlapping [from, to].
func (c *CarbonClient) GetIntensity(from, to time.Time) ([]IntensityPeriod, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("from must be before to")
	}

	cache := getCarbonCache()
	key := carbonCacheKey(from, to)
	if cached, ok := cache.get(key); ok {
		log.Printf("[Carbon] Cache hit: %d periods (from=%s, to=%s)",
			len(cached), from.Format(carbonTimeFormat), to.Format(carbonTimeFormat))
		return cached, nil
	}

	url := fmt.Sprintf("%s/intensity/%s/%s",
		c.BaseURL,
		from.UTC().Format(carbonTimeFormat),
		to.UTC().Format(carbonTimeFormat))

	log.Printf("[Carbon] Request: GET %s", url)
	resp, err := c.Client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("carbon intensity request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("carbon intensity response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &CarbonAPIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var decoded intensityResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("carbon intensity decode: %w", err)
	}

	periods := make([]IntensityPeriod, 0, len(decoded.Data))
	for _, d := range decoded.Data {
		fromTs, err := time.Parse(carbonTimeFormat, d.From)
		if err != nil {
			return nil, fmt.Errorf("carbon intensity period from %q: %w", d.From, err)
		}
		toTs, err := time.Parse(carbonTimeFormat, d.To)
		if err != nil {
			return nil, fmt.Errorf("carbon intensity period to %q: %w", d.To, err)
		}
		periods = append(periods, IntensityPeriod{
			From:     fromTs,
			To:       toTs,
			Forecast: d.Intensity.Forecast,
			Actual:   d.Intensity.Actual,
		})
	}
	if len(periods) == 0 {
		return nil, fmt.Errorf("carbon intensity api returned no periods")
	}

	cache.set(key, periods)
	return periods, nil
}

// ForTimes fetches intensity covering the given timestamps and aligns each
// timestamp with the nearest period start, mirroring a nearest reindex.
func (c *CarbonClient) ForTimes(times []time.Time) ([]float64, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("no timestamps")
	}
	from := times[0]
	to := times[len(times)-1].Add(30 * time.Minute)

	periods, err := c.GetIntensity(from, to)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(times))
	for i, ts := range times {
		best := periods[0]
		bestDist := absDuration(ts.Sub(periods[0].From))
		for _, period := range periods[1:] {
			if d := absDuration(ts.Sub(period.From)); d < bestDist {
				best, bestDist = period, d
			}
		}
		out[i] = best.Forecast
	}
	return out, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

type intensityResponse struct {
	Data []struct {
		From      string `json:"from"`
		To        string `json:"to"`
		Intensity struct {
			Forecast float64  `json:"forecast"`
			Actual   *float64 `json:"actual"`
			Index    string   `json:"index"`
		} `json:"intensity"`
	} `json:"data"`
}
