package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olivierh59500/gravity-sandbox/internal/app"
)

const appName = "gravity-sandbox"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Interactive 2D gravity sandbox",
		Long: `Gravity Sandbox opens a pannable, zoomable view of a 2D gravity simulation.

Left-drag launches a new particle, right-drag pans, the wheel zooms and a
middle click follows a particle. Arrow keys pan, z/x zoom and c follows the
heaviest particle.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "config file (default $HOME/.gravity-sandbox/config.yaml)")
	f.String("backend", "", "viewer backend: window or terminal")
	f.String("log-level", "", "log level (debug, info, warn, error)")
	f.String("log-file", "", "log file, used by the terminal backend")
	f.String("scene", "", "initial scene: empty, orbit or noise")
	f.Int64("seed", 0, "seed for generated scenes")

	cmd.AddCommand(newConfigCmd())
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.DefaultConfigPath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := app.WriteDefaultConfig(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	})
	return cmd
}
