package commands

import (
	"context"
	"fmt"
	"os"

	"minerprofit-backend/lib/configutil"
	"minerprofit-backend/lib/restyutil"
	"minerprofit-backend/lib/serviceutil"
	"minerprofit-backend/lib/telemetry"
	"minerprofit-backend/services/profitability"

	"github.com/spf13/cobra"
)

var configPath *string
var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "minerprofit-cli",
	Short: "minerprofit-cli inspects and maintains miner profitability data.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *verbose {
			telemetry.InitSlog(true)
		}
	},
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "Path to the config file.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging and dump http exchanges.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readConfig reads the config file, a missing file yields the defaults.
func readConfig() profitability.Config {
	cfg, err := configutil.ReadConfig[profitability.Config](*configPath)
	if os.IsNotExist(err) {
		return profitability.Config{}
	}
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func build(ctx context.Context) profitability.Components {
	var output restyutil.InstrumentOutput
	if *verbose {
		fsOutput, err := restyutil.NewFilesystemOutput(".dev/resty/cli")
		if err != nil {
			serviceutil.Fatal("failed to create resty output", err)
		}
		output = fsOutput
	}

	components, err := profitability.Build(ctx, readConfig(), profitability.BuildOptions{
		InstrumentOutput: output,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize profitability", err)
	}
	return components
}
