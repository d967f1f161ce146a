package weir

import (
	"time"

	"github.com/Robbie-Perry/ShadyTimes/pkg/noaa"
)

const gridStep = 15 * time.Minute

// Merge aligns a prediction series and an observation series onto the
// quarter-hour grid. Only samples whose minute sits exactly on the grid
// survive; observations are attached to the prediction slot sharing their
// truncated timestamp, with later duplicates overwriting earlier ones. The
// output preserves the order of the prediction series.
func Merge(predictions, observations noaa.Samples) []TidePoint {
	observed := make(map[int64]float64, len(observations))
	for _, s := range observations {
		t := s.T()
		if !onGrid(t) {
			continue
		}
		observed[bucket(t)] = float64(s.Height)
	}

	points := make([]TidePoint, 0, len(predictions))
	for _, s := range predictions {
		t := s.T()
		if !onGrid(t) {
			continue
		}
		p := TidePoint{
			Time:      t,
			Label:     t.Format(labelFormat),
			Predicted: float64(s.Height),
		}
		if v, ok := observed[bucket(t)]; ok {
			h := v
			p.Observed = &h
		}
		points = append(points, p)
	}
	return points
}

func onGrid(t time.Time) bool {
	return t.Minute()%15 == 0
}

// bucket keys a time by its grid slot so an observation and a prediction
// from the same quarter hour collide.
func bucket(t time.Time) int64 {
	return t.Truncate(gridStep).Unix()
}
