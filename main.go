package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/exp/slog"
)

var MANAGER *TripManager

func main() {
	logger := slog.New(NewLogHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := ReadConfig("./config.yaml")
	MANAGER = NewTripManager(config)

	app := mux.NewRouter()
	app.Use(RecoveryMiddleware)
	app.Use(LoggingMiddleware)

	MapGet(app, "/health", func(none) Result {
		return OK("ok")
	})
	MapGet(app, "/v0/entities", HandleEntitiesRequest)
	MapGet(app, "/v0/nearest", HandleNearestRequest)
	MapPost(app, "/v0/route", HandleRouteRequest)
	MapPost(app, "/v0/schedule", HandleScheduleRequest)

	handler := cors.New(cors.Options{
		AllowedOrigins: config.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}).Handler(app)

	slog.Info("listening on " + config.Server.Addr)
	if err := http.ListenAndServe(config.Server.Addr, handler); err != nil {
		slog.Error("server stopped: " + err.Error())
		panic(err)
	}
}
