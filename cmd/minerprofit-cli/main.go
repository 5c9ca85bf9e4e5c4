package main

import (
	"context"

	"minerprofit-backend/cmd/minerprofit-cli/commands"
	"minerprofit-backend/lib/serviceutil"
	"minerprofit-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	tel, _ := telemetry.SetupFromEnv(ctx, "minerprofit-cli")
	defer tel.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
