package main

import (
	"context"
	"log/slog"
	"time"

	"minerprofit-backend/lib/restyutil"
	"minerprofit-backend/lib/serviceutil"
	"minerprofit-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "minerprofit-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	if !tel.Enabled() {
		return
	}
	go func() {
		<-ctx.Done()
		tel.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx, 30*time.Second)
}

// restyOutput dumps every exchange with the source site when verbose.
func restyOutput(verbose bool) restyutil.InstrumentOutput {
	if !verbose {
		return nil
	}
	output, err := restyutil.NewFilesystemOutput(".dev/resty/asicminervalue")
	if err != nil {
		slog.Warn("failed to create resty output directory", "err", err)
		return nil
	}
	return output
}
