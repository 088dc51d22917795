package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/moonshadow565/TroyBinary/internal/config"
	"github.com/moonshadow565/TroyBinary/pkg/logging"
)

const version = "0.4.0"

// app carries the state shared by every subcommand.
type app struct {
	flags  config.Flags
	cfg    config.Config
	logger hclog.Logger
}

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "troybin %s\n", version)
	fmt.Fprintf(w, "Built: %s\n", getBuildTimestamp())
}

func newRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}
	var versionFlag bool

	rootCmd := &cobra.Command{
		Use:           "troybin",
		Short:         "Inspect inibin configuration containers",
		Long:          `Inspect inibin configuration containers and the particle systems they describe`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.flags)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.New("troybin", cfg.LogLevel, cfg.JSONLog, cmd.ErrOrStderr())
			if cfg.Path != "" {
				a.logger.Debug("⚙️ Loaded config", "path", cfg.Path)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.flags.ConfigPath, "config", "", "Path to config.toml")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(
		newDumpCmd(a),
		newGetCmd(a),
		newHashCmd(a),
		newParticlesCmd(a),
		newCurveCmd(a),
	)
	return rootCmd
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
