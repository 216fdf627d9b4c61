// Package cli implements the exocli command tree. Every subcommand performs
// one SDK call against the configured account and prints the JSON result.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/acme/exotel-go/exotel"
	"github.com/acme/exotel-go/internal/config"
	"github.com/acme/exotel-go/internal/telemetry"
	"github.com/acme/exotel-go/pkg/logger"
)

var (
	cfgPath string
	cfg     *config.Config
	log     *zap.Logger

	shutdownTracing func(context.Context) error

	rootCmd = &cobra.Command{
		Use:           "exocli",
		Short:         "Exotel campaign, list and SMS management",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}

			log, err = logger.New(cfg.Logging.Level)
			if err != nil {
				return err
			}

			shutdownTracing, err = telemetry.Setup(cmd.Context(), cfg.Telemetry)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if log != nil {
				_ = log.Sync()
			}
			if shutdownTracing != nil {
				return shutdownTracing(cmd.Context())
			}
			return nil
		},
	}
)

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "exocli.yaml", "path to YAML config file")
	rootCmd.AddCommand(campaignsCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(smsCmd)
	rootCmd.AddCommand(exophonesCmd)
}

func newClient() *exotel.Client {
	opts := []exotel.Option{exotel.WithLogger(log)}
	if cfg.Exotel.BaseURL != "" {
		opts = append(opts, exotel.WithBaseURL(cfg.Exotel.BaseURL))
	}
	return exotel.NewClient(cfg.Exotel.SID, cfg.Exotel.Key, cfg.Exotel.Token, opts...)
}

// printJSON renders an API response for the terminal.
func printJSON(cmd *cobra.Command, v any) error {
	var out []byte
	var err error

	if raw, ok := v.(json.RawMessage); ok {
		var buf any
		if err := json.Unmarshal(raw, &buf); err == nil {
			v = buf
		}
	}
	out, err = json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}
