package main

import (
	"context"
	"log/slog"
	"os"

	"quoraprofiler-backend/lib/serviceutil"
	"quoraprofiler-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "quora-server")
	if os.IsNotExist(err) {
		slog.InfoContext(ctx, "no telemetry.json5 found, otel export disabled")
		return
	}
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		tel.Shutdown(context.Background())
	}()

	telemetry.InstrumentPerfStats(ctx)
}
