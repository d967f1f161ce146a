package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Robbie-Perry/ShadyTimes/pkg/dashboard"
	"github.com/Robbie-Perry/ShadyTimes/pkg/handlers"
	"github.com/Robbie-Perry/ShadyTimes/pkg/metrics"
	"github.com/Robbie-Perry/ShadyTimes/pkg/noaa"
	"github.com/Robbie-Perry/ShadyTimes/pkg/source"
	"github.com/Robbie-Perry/ShadyTimes/pkg/sunset"
)

type Config struct {
	Port    string  `default:"8080"`
	Prefix  string  `default:"/"`
	Station int     `default:"9413745"`
	Lat     float64 `default:"36.9741"`
	Long    float64 `default:"-122.0308"`
	Debug   bool    `default:"false"`
}

// rolloverSpec fires one minute past midnight so the header tracks the new
// calendar day.
const rolloverSpec = "1 0 * * *"

func main() {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}

	logger, err := newLogger(env.Debug)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	client := noaa.NewClient(noaa.Station(env.Station))
	src := source.New(client, sugar)
	place := sunset.Place{Lat: env.Lat, Long: env.Long, Location: time.Local}
	ctrl := dashboard.New(src, place, sugar)

	// Load today up front. Failure is not fatal: the dashboard serves an
	// unknown state with the error attached until a retry succeeds.
	if err := ctrl.Load(context.Background(), time.Now()); err != nil {
		sugar.Warnw("initial load failed", "error", err)
	}

	cr := cron.New()
	if _, err := cr.AddFunc(rolloverSpec, func() {
		ctrl.Rollover(context.Background())
	}); err != nil {
		sugar.Fatalw("failed to schedule rollover", "error", err)
	}
	cr.Start()
	defer cr.Stop()

	r := mux.NewRouter().StrictSlash(true)
	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, ctrl, sugar)

	srv := &http.Server{
		Handler:      metrics.LatencyHandler(r),
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	sugar.Infow("listening and serving", "addr", srv.Addr, "prefix", env.Prefix)
	sugar.Fatal(srv.ListenAndServe())
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
