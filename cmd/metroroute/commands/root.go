package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/metroroute/metro"
	"github.com/katalvlaran/metroroute/netfile"
)

// Config keys shared by flags, the config file and METROROUTE_* env vars.
const (
	keyNetwork = "network"
	keyVerbose = "verbose"
)

// app carries per-invocation state so that commands never touch globals.
type app struct {
	cfgFile string
	v       *viper.Viper
	logger  *slog.Logger
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd assembles the metroroute command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "metroroute",
		Short: "Route planner for multi-line metro networks",
		Long: `metroroute finds the route with the fewest hops and the fastest route
between two stations of a metro network.

Without --network it uses the bundled Ankara demo network.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			a.initLogger(cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.metroroute.yaml)")
	root.PersistentFlags().String(keyNetwork, "", "network definition YAML (default: bundled Ankara network)")
	root.PersistentFlags().BoolP(keyVerbose, "v", false, "log every expanded station")

	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = a.v.BindPFlag(f.Name, f)
	})

	root.AddCommand(newRouteCmd(a), newDemoCmd(a), newLinesCmd(a))

	return root
}

// initConfig reads the config file and environment. A missing default
// config file is not an error; a missing --config file is.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix("METROROUTE")
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	a.v.SetConfigFile(filepath.Join(home, ".metroroute.yaml"))
	a.v.SetConfigType("yaml")
	_ = a.v.ReadInConfig()

	return nil
}

func (a *app) initLogger(w io.Writer) {
	level := slog.LevelInfo
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadNetwork builds the configured network, or the bundled one.
func (a *app) loadNetwork() (*metro.Network, error) {
	path := a.v.GetString(keyNetwork)
	if path == "" {
		a.logger.Debug("using bundled network", "name", netfile.Ankara().Name)
		return netfile.AnkaraNetwork(), nil
	}

	n, def, err := netfile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded network",
		"path", path,
		"name", def.Name,
		"stations", n.StationCount(),
		"connections", n.ConnectionCount(),
	)

	return n, nil
}

// errUnknownStation wraps metro.ErrStationNotFound for CLI arguments.
func errUnknownStation(key string) error {
	return fmt.Errorf("%w: %q", metro.ErrStationNotFound, key)
}

var errBadMode = errors.New("mode must be one of fewest, fastest, both")
