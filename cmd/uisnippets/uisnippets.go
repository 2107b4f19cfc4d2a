package uisnippets

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/uisnippets/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	port        int
	dev         bool
	journalPath string
	sessionTTL  string
	logLevel    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "uisnippets",
	Short: "Small server-side web UI demos",
	Long: `uisnippets serves two independent demo interfaces:
a grid with a clickable icon column, and a side menu switching between views.`,
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.uisnippets.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "debug", "Log level: debug, info, warn or error")
}

func initConfig() {
	// .env is optional, values from it end up in the environment read below
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Could not load .env file", "error", err)
	}

	if cfgFile != "" {
		slog.Info("Using config file", "path", cfgFile)
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".uisnippets" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".uisnippets")
	}
	// Set environment variable prefix
	viper.SetEnvPrefix("uisnippets")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create an example config
			createExampleConfig()
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

const exampleConfig = `
port = 9000
dev = false
# journal = "./uisnippets.sqlite"
session-ttl = "30m"
`

func createExampleConfig() {
	configPath := "./.uisnippets.toml"

	if _, err := os.Stat(configPath); err == nil {
		return
	}

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Error("Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.Info("Example config file created", "path", configPath)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed {
			return
		}

		// Config keys may be written either with hyphens or without them.
		for _, configName := range []string{f.Name, strings.ReplaceAll(f.Name, "-", "")} {
			if !viper.IsSet(configName) {
				continue
			}

			val := viper.Get(configName)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindErr = fmt.Errorf("could not set flag %s from config: %w", f.Name, err)

				return
			}

			slog.Debug("Flag set to config value", "flag", f.Name, "value", val)

			return
		}
	})

	return bindErr
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, fmt.Errorf("bad log level %q: %w", name, err)
	}

	return level, nil
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, args); err != nil {
		return err
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}

	slog.SetDefault(logging.NewLogger(os.Stderr, level))

	return nil
}
