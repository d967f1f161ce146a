package noaa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	NOAA_URL = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
	TIME_FMT = "20060102"

	productPredictions = "predictions"
	productWaterLevel  = "water_level"
)

// HTTPClient is the part of *http.Client the tide client depends on.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches per-day tide series for one station. The zero value is
// usable once Station is set; NewClient fills in production defaults.
type Client struct {
	Station Station
	BaseURL string
	HTTP    HTTPClient
}

// NewClient returns a Client for station with a bounded request timeout.
func NewClient(station Station) *Client {
	return &Client{
		Station: station,
		BaseURL: NOAA_URL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Predictions returns the quarter-hour tide forecast covering the calendar
// day of day.
func (c *Client) Predictions(ctx context.Context, day time.Time) (Samples, error) {
	var result PredictionsResult
	if err := c.fetch(ctx, c.query(day, productPredictions), &result); err != nil {
		return nil, err
	}
	return result.Predictions, nil
}

// WaterLevels returns the verified gauge readings recorded on the calendar
// day of day. Readings land every six minutes; callers align them onto
// whatever grid they need.
func (c *Client) WaterLevels(ctx context.Context, day time.Time) (Samples, error) {
	var result WaterLevelResult
	if err := c.fetch(ctx, c.query(day, productWaterLevel), &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) fetch(ctx context.Context, vals url.Values, result interface{}) error {
	addr, err := c.url(vals)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", addr.Host, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return err
	}

	return nil
}

func (c *Client) url(vals url.Values) (*url.URL, error) {
	base := c.BaseURL
	if base == "" {
		base = NOAA_URL
	}
	addr, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	addr.RawQuery = vals.Encode()
	return addr, nil
}

func (c *Client) query(day time.Time, product string) url.Values {
	vals := make(url.Values)
	vals.Add("begin_date", day.Format(TIME_FMT))
	vals.Add("end_date", day.Format(TIME_FMT))
	vals.Add("station", fmt.Sprintf("%d", c.Station))
	vals.Add("product", product)
	if product == productPredictions {
		vals.Add("interval", "15")
	}
	vals.Add("datum", "MLLW")
	vals.Add("time_zone", "lst_ldt")
	vals.Add("units", "metric")
	vals.Add("format", "json")
	return vals
}

func (c *Client) httpClient() HTTPClient {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
