// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the agent-catalog CLI.
package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/agent-catalog/internal/catalog"
	"github.com/pdiddy/agent-catalog/internal/display"
	"github.com/pdiddy/agent-catalog/internal/logging"
	"github.com/pdiddy/agent-catalog/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes diagnostics to stderr. It is replaced once config is resolved.
var logger = zerolog.Nop()

// startupInfo records what configure found so it can be logged once the
// configured logger exists.
type startupInfo struct {
	configFile string
	configErr  error
	envLoaded  bool
	envErr     error
}

var startup startupInfo

// rootCmd lists the agents when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "agent-catalog",
	Short: "List the available Claude Code agents by category",
	Long: `agent-catalog reads the agent README at ` + types.SourcePath + `,
groups each listed agent under its category heading, and prints a
column-formatted catalog followed by a summary of model tiers.

Configuration only affects diagnostic logging on stderr.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(os.Stderr, loadConfig(viper.GetViper()), startup)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalog(cmd.OutOrStdout(), logger, types.SourcePath)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./agent-catalog.yaml or ~/.config/agent-catalog/agent-catalog.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostic log level: trace, debug, info, warn, error")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	setDefaults(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	startup = configure(viper.GetViper(), cfgFile)
}

func setDefaults(v *viper.Viper) {
	defaults := types.DefaultLogConfig()
	v.SetDefault("log_level", defaults.Level)
	v.SetDefault("log_format", string(defaults.Format))
}

// configure loads .env into the environment and points v at the config file
// and AGENT_CATALOG_* variables. A missing config file is only reported when
// cfgFile names it explicitly.
func configure(v *viper.Viper, cfgFile string) startupInfo {
	var info startupInfo

	if err := godotenv.Load(); err == nil {
		info.envLoaded = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		info.envErr = err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("agent-catalog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "agent-catalog"))
		}
	}

	v.SetEnvPrefix("AGENT_CATALOG")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err == nil {
		info.configFile = v.ConfigFileUsed()
	} else {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			info.configErr = err
		}
	}
	return info
}

// loadConfig resolves logger settings from flags, environment, config file,
// and defaults.
func loadConfig(v *viper.Viper) types.LogConfig {
	return types.LogConfig{
		Level:  v.GetString("log_level"),
		Format: types.LogFormat(v.GetString("log_format")),
	}
}

// newLogger builds the stderr logger and reports what configure found.
func newLogger(w io.Writer, cfg types.LogConfig, info startupInfo) zerolog.Logger {
	log := logging.New(w, cfg)
	if info.configFile != "" {
		log.Debug().Str("file", info.configFile).Msg("using config file")
	}
	if info.configErr != nil {
		log.Warn().Err(info.configErr).Msg("could not read config file")
	}
	if info.envLoaded {
		log.Debug().Msg("loaded .env")
	}
	if info.envErr != nil {
		log.Warn().Err(info.envErr).Msg("could not load .env")
	}
	return log
}

// runCatalog loads the README at source and prints the listing to w. A
// missing README prints the unavailable message and is not an error.
func runCatalog(w io.Writer, log zerolog.Logger, source string) error {
	cat, ok, err := catalog.Load(source)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Str("source", source).Msg("agent source not found")
	} else {
		log.Debug().Str("source", source).Int("agents", cat.Len()).Msg("loaded agent catalog")
	}
	display.Render(w, cat, ok)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
