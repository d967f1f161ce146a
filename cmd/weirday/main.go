// weirday prints today's weir crossing outlook: the tide extremes, every
// access window, the live countdown, and an hourly height strip.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Robbie-Perry/ShadyTimes/pkg/noaa"
	"github.com/Robbie-Perry/ShadyTimes/pkg/splines"
	"github.com/Robbie-Perry/ShadyTimes/pkg/units"
	"github.com/Robbie-Perry/ShadyTimes/pkg/weir"
)

func main() {
	now := time.Now()
	ctx := context.Background()
	client := noaa.NewClient(noaa.DefaultStation)

	preds, err := client.Predictions(ctx, now)
	if err != nil {
		fmt.Printf("failed to fetch predictions: %v\n", err)
		return
	}
	obs, err := client.WaterLevels(ctx, now)
	if err != nil {
		fmt.Printf("failed to fetch water levels: %v\n", err)
		return
	}

	points := weir.Merge(preds, obs)
	if len(points) == 0 {
		fmt.Println("no tide data for today")
		return
	}

	hl := weir.FindHighLow(points)
	fmt.Printf("high %s at %s, low %s at %s\n",
		units.Format(hl.High.Predicted, units.Meters), hl.High.Label,
		units.Format(hl.Low.Predicted, units.Meters), hl.Low.Label)

	windows := weir.FindAccessWindows(points)
	if len(windows) == 0 {
		fmt.Println("the crossing stays shut all day")
	}
	for _, w := range windows {
		fmt.Printf("open %s\n", w)
	}
	if cd := weir.NextCountdown(windows, now); cd != nil {
		fmt.Println(cd)
	}

	fmt.Println()
	printHourly(points)
}

// printHourly resamples the forecast through the spline and prints one line
// per hour.
func printHourly(points []weir.TidePoint) {
	knots := make([]splines.Point, len(points))
	for i, p := range points {
		knots[i] = splines.Point{Time: p.Time, Height: p.Predicted}
	}
	spl := splines.CurvesBetween(knots)
	if spl == nil {
		return
	}

	tstart := points[0].Time
	tend := points[len(points)-1].Time
	for t := tstart; !t.After(tend); t = t.Add(time.Hour) {
		fmt.Printf("%s  %s\n", t.Format("15:04"), units.Format(spl.Eval(t), units.Meters))
	}
}
