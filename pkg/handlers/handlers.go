// Package handlers wires the dashboard controller to its HTTP surface.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Robbie-Perry/ShadyTimes/pkg/dashboard"
	"github.com/Robbie-Perry/ShadyTimes/pkg/units"
)

const dateFormat = "2006-01-02"

// Register installs every route on r.
func Register(r *mux.Router, c *dashboard.Controller, log *zap.SugaredLogger) {
	r.Handle("/", makeIndexHandler(c))
	r.Handle("/api/v1/day", makeDayHandler(c, log))
	r.Handle("/api/v1/status", makeStatusHandler(c, log))
	r.Handle("/api/v1/refresh", makeRefreshHandler(c, log)).Methods(http.MethodPost)
	r.Handle("/api/v1/unit", makeUnitHandler(c, log)).Methods(http.MethodPost)
	r.Handle("/api/v1/live", makeLiveHandler(c, log))
	r.Handle("/metrics", promhttp.Handler())
}

// makeDayHandler serves the day screen. A date query parameter navigates to
// another day; absent, it serves today. Pass o=text for a plain rendering.
func makeDayHandler(c *dashboard.Controller, log *zap.SugaredLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := time.Now()
		if ds := r.FormValue("date"); ds != "" {
			parsed, err := time.ParseInLocation(dateFormat, ds, time.Local)
			if err != nil {
				http.Error(w, fmt.Sprintf("bad date %q, want YYYY-MM-DD", ds), http.StatusBadRequest)
				return
			}
			date = parsed
		}

		if err := c.Load(r.Context(), date); err != nil {
			log.Errorw("day load failed", "date", date.Format(dateFormat), "error", err)
			http.Error(w, fmt.Sprintf("failed to get data: %+v", err), http.StatusBadGateway)
			return
		}

		view := c.DayView()
		if r.FormValue("o") == "text" {
			serveDayText(w, view)
			return
		}
		writeJSON(w, log, view)
	})
}

func serveDayText(w http.ResponseWriter, view dashboard.DayView) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "%s\n", view.Date.Format(dateFormat))
	if view.Extrema.High != nil && view.Extrema.Low != nil {
		fmt.Fprintf(w, "high %s at %s, low %s at %s\n",
			units.Format(view.Extrema.High.Predicted, view.Unit), view.Extrema.High.Label,
			units.Format(view.Extrema.Low.Predicted, view.Unit), view.Extrema.Low.Label)
	}
	if len(view.Windows) == 0 {
		fmt.Fprintln(w, "no access windows")
		return
	}
	for _, win := range view.Windows {
		fmt.Fprintf(w, "%s", win.Label)
		if !win.Daylight {
			fmt.Fprintf(w, " (after dark)")
		}
		fmt.Fprintln(w)
	}
}

// makeStatusHandler serves the header snapshot. An unknown state is still a
// 200; it is an answer, not a failure.
func makeStatusHandler(c *dashboard.Controller, log *zap.SugaredLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, c.Snapshot())
	})
}

func makeRefreshHandler(c *dashboard.Controller, log *zap.SugaredLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := c.Refresh(r.Context()); err != nil {
			log.Errorw("refresh failed", "error", err)
			http.Error(w, fmt.Sprintf("failed to get data: %+v", err), http.StatusBadGateway)
			return
		}
		writeJSON(w, log, map[string]bool{"refreshed": true})
	})
}

func makeUnitHandler(c *dashboard.Controller, log *zap.SugaredLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Unit units.Unit `json:"unit"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("bad request body: %v", err), http.StatusBadRequest)
			return
		}
		if err := c.SetUnit(req.Unit); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, log, map[string]units.Unit{"unit": req.Unit})
	})
}

func makeIndexHandler(c *dashboard.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := c.Snapshot()
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "shadytimes: weir crossing conditions")
		fmt.Fprintf(w, "state: %s\n", snap.Status.State)
		if snap.Tide != "" {
			fmt.Fprintf(w, "tide: %s (%s)\n", snap.Tide, snap.Trend)
		}
		if snap.Countdown != nil {
			fmt.Fprintf(w, "%s\n", snap.Countdown)
		}
	})
}

func writeJSON(w http.ResponseWriter, log *zap.SugaredLogger, v interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorw("failed to encode response", "error", err)
	}
}
