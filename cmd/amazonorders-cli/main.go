package main

import (
	"context"
	"log/slog"

	"amazonorders/cmd/amazonorders-cli/commands"
	"amazonorders/lib/telemetry"
	"amazonorders/lib/util/serviceutil"
)

func main() {
	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "amazonorders-cli")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer func() {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	}()

	commands.ExecuteContext(ctx)
}
