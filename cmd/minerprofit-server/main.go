package main

import (
	"context"
	"flag"
	"time"

	"minerprofit-backend/lib/chrono"
	"minerprofit-backend/lib/configutil"
	"minerprofit-backend/lib/serviceutil"
	"minerprofit-backend/services/profitability"
)

type Config struct {
	Port           int      `json:"port"`
	AllowedOrigins []string `json:"allowed_origins"`
	profitability.Config
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "Path to the config file.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config](*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	components, err := profitability.Build(ctx, cfg.Config, profitability.BuildOptions{
		InstrumentOutput: restyOutput(*verbose),
	})
	if err != nil {
		serviceutil.Fatal("init profitability", err)
	}
	defer components.Close()

	if cfg.Refresh.Cron != "" {
		cron := chrono.NewStandardCron(time.UTC)
		defer cron.Stop(context.Background())
		err = profitability.ScheduleRefresh(ctx, cron, cfg.Refresh.Cron, components.Store)
		if err != nil {
			serviceutil.Fatal("schedule refresh", err)
		}
	}

	handler := profitability.NewHandler(components.Store, components.Resolver)
	router := profitability.NewRouter(handler, profitability.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
	})

	err = serviceutil.StartHttpServer(ctx, cfg.Port, router)
	if err != nil {
		serviceutil.Fatal("http server", err)
	}
}
