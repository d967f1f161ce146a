package noaa

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const sampleTimeFormat = "2006-01-02 15:04"

// Sample holds a single timestamped tide height, either predicted or
// observed.
type Sample struct {
	// Local time of the sample
	Time Time `json:"t"`
	// Height in meters above MLLW
	Height Height `json:"v"`
}

// Verify the custom types can be unmarshaled
var _ json.Unmarshaler = &Time{}
var _ json.Unmarshaler = new(Height)

// Samples is a time series of Sample.
type Samples []Sample

// PredictionsResult is the shape the API returns prediction series in.
type PredictionsResult struct {
	Predictions Samples `json:"predictions"`
}

// WaterLevelResult is the shape the API returns observation series in. Rows
// carry sigma and quality fields alongside t and v; only t and v survive
// decoding.
type WaterLevelResult struct {
	Data Samples `json:"data"`
}

type Station int

const (
	SantaCruz Station = 9413745

	// DefaultStation is the gauge nearest the weir.
	DefaultStation = SantaCruz
)

type Time time.Time

func (t *Time) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("sample time %q not string: %w", buf, err)
	}
	parsed, err := time.ParseInLocation(sampleTimeFormat, s, time.Local)
	if err != nil {
		return fmt.Errorf("sample time %q not in fmt %q: %w", s, sampleTimeFormat, err)
	}
	*t = Time(parsed)
	return nil
}

type Height float64

func (h *Height) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("water height %q not string: %w", buf, err)
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("water height %q not a float: %w", s, err)
	}
	*h = Height(parsed)
	return nil
}

// T returns the sample's timestamp as a plain time.Time.
func (s Sample) T() time.Time {
	return time.Time(s.Time)
}

func (s Sample) String() string {
	return fmt.Sprintf("{t: %s, v: %f}",
		s.T().Format(time.RFC822),
		s.Height)
}
