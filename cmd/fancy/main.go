package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/fancy-numbers/internal/cli"
	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	version = "dev"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fancy",
		Short: "✨ Phone number pattern classifier",
		Long: `fancy tags ten-digit phone numbers with the structural patterns they match
(mirrors, repeating blocks, counting runs, VIP shapes), sorts batches into buckets,
and reduces numbers to their numerology sums.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/fancy/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(categorizeCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(numerologyCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(patternsCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx := interrupts.HandleInterrupts(context.Background())

	err := newRootCmd().ExecuteContext(ctx)
	interrupts.Stop()

	if interrupts.WasInterrupted() {
		os.Exit(130)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		if common.IsInputError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		path := config.ExpandPath(cfgFile)
		if _, err := os.Stat(path); err != nil {
			return common.NewUserError("config file not found: "+cfgFile, fmt.Errorf("%w: %w", common.ErrMissingConfig, err))
		}
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath(config.Dir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FANCY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	cfg = loaded

	if err := common.SetupLogger(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	common.LogDebug("configuration loaded", common.Fields{"file": viper.ConfigFileUsed(), "output": cfg.Output.Format})
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fancy %s\n", version)
		},
	}
}
