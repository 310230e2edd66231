package cmd

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// EnvPrefix is the prefix of the environment variables overriding flags,
// e.g. EVMMATH_ROUNDING=up.
const EnvPrefix = "EVMMATH"

// NewRootCmd builds the evmmath command tree with its own configuration
// registry, so that every invocation starts from the flag defaults.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "evmmath",
		Short: "fixed-point calculator with on-chain rounding",
		Long: "evmmath evaluates fixed-point operations on scaled integers " +
			"exactly as EVM contracts do, with explicit down, up and half-up rounding.",

		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
	}

	rootCmd.PersistentFlags().String("unit", "wad", "unit of the operands: percent, wad, ray, unscaled or a number of decimals")
	rootCmd.PersistentFlags().String("rounding", "half-up", "rounding mode: down, up or half-up")
	rootCmd.PersistentFlags().Int("digits", -1, "fractional digits of the result, -1 prints all of them")
	rootCmd.PersistentFlags().Bool("raw", false, "read and print scaled integers instead of decimals")
	rootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	rootCmd.PersistentFlags().String("config", "", "config file")

	if err := bindFlags(v, rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	rootCmd.AddCommand(
		newMulCmd(v),
		newDivCmd(v),
		newAvgCmd(v),
		newPowCmd(v),
		newSqrtCmd(v),
		newExpCmd(v),
		newConvertCmd(v),
		newVersionCmd(),
	)
	return rootCmd
}

// bindFlags binds config keys to flags and enables the environment
// variable overrides.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	v.AutomaticEnv()

	return v.BindPFlags(flags)
}

// loadConfig reads the optional config file and sets up logging.
func loadConfig(v *viper.Viper) error {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to load config file %s", configFile)
		}
	}

	logger := log.StandardLogger()
	logger.SetLevel(log.InfoLevel)
	if v.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// Execute runs the command line and exits on failure.
func Execute() {
	log.SetFormatter(&prefixed.TextFormatter{})

	if err := NewRootCmd().Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
