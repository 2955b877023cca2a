package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/anyonfuse/config"
	"github.com/katalvlaran/anyonfuse/scenario"
	"github.com/katalvlaran/anyonfuse/state"
)

// app carries what every subcommand needs once the root has initialised.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "anyonfuse",
		Short:         "Anyon fusion-tree engine",
		Long:          "anyonfuse validates fusion trees, evaluates fusion rules and extracts qubit encodings for Ising and Fibonacci anyons.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .anyonfuse.yaml)")
	pf.String("env-file", ".env", "dotenv file with ANYONFUSE_* settings")
	pf.String("model", "ising", "category used when a scenario does not name one (ising|fibonacci)")
	pf.String("log-level", "info", "log level (debug|info|warn|error)")
	pf.String("log-format", "auto", "log format (auto|text|json)")
	_ = a.v.BindPFlag("model", pf.Lookup("model"))
	_ = a.v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", pf.Lookup("log-format"))

	root.AddCommand(
		a.treeCmd(),
		a.reachCmd(),
		a.encodeCmd(),
		a.basisCmd(),
		a.enumerateCmd(),
		a.minAnyonsCmd(),
	)

	return root
}

// init reads the dotenv file and config file, then loads and validates the config.
func (a *app) init(cmd *cobra.Command) error {
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return err
		}
	} else {
		a.v.SetConfigName(".anyonfuse")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		// No config file is fine; defaults apply.
		_ = a.v.ReadInConfig()
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = newLogger(cmd.ErrOrStderr(), cfg)

	return err
}

// loadScenario reads path and fills in the configured model when the file has none.
func (a *app) loadScenario(path string) (*scenario.Scenario, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if sc.Model == "" {
		sc.Model = a.cfg.Model
	}

	return sc, nil
}

// build replays sc into a ledger, logging every rejected operation.
func (a *app) build(sc *scenario.Scenario) (*state.State, error) {
	st, rejected, err := sc.Build(state.WithOnReject(a.log.rejected))
	if err != nil {
		return nil, err
	}
	if len(rejected) > 0 {
		a.log.Warn("operations rejected", "count", len(rejected), "accepted", len(st.Operations()))
	}

	return st, nil
}
