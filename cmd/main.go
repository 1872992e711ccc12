package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fridagar/fridagar/cmd/check"
	"github.com/fridagar/fridagar/cmd/days"
	"github.com/fridagar/fridagar/cmd/easter"
	"github.com/fridagar/fridagar/cmd/workdays"
	"github.com/fridagar/fridagar/utils"
	"github.com/fridagar/fridagar/utils/log"
)

const (
	defaultConfigFilePath = "./fridagar.yml"
	configDesc            = "set the path for the fridagar YAML configuration file"
	logLevelDesc          = "override the log level of the configuration file (debug, info, warning, error)"
	formatDesc            = "override the output format of the configuration file (table, json, csv)"
)

var (
	// flagPrintVersion set flag to show current fridagar version.
	flagPrintVersion bool
	configFilePath   string
	logLevel         string
	outputFormat     string
)

// Execute builds the command tree and executes commands.
func Execute() error {
	defer log.Sync()
	return NewRootCmd().Execute()
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	// c is the root command.
	c := &cobra.Command{
		Use:   "fridagar",
		Short: "Icelandic holidays and workday arithmetic",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print version if specified.
			if flagPrintVersion {
				cmd.Printf("version: %+v\n", utils.Tag)
				cmd.Printf("commit hash: %+v\n", utils.GitHash)
				cmd.Printf("utc build time: %+v\n", utils.BuildStamp)
				return nil
			}
			// Print information regarding usage.
			return cmd.Usage()
		},
		PersistentPreRunE: loadConfig,
	}

	// Adds subcommands and flags.
	c.AddCommand(days.Cmd)
	c.AddCommand(check.Cmd)
	c.AddCommand(workdays.Cmd)
	c.AddCommand(easter.Cmd)
	c.Flags().BoolVarP(&flagPrintVersion, "version", "v", false, "show the version info and exit")
	c.PersistentFlags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
	c.PersistentFlags().StringVar(&logLevel, "log-level", "", logLevelDesc)
	c.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", formatDesc)

	return c
}

// loadConfig reads the configuration file into utils.InstanceConfig and
// applies the command line overrides. The default configuration file may
// be absent; a path given with --config must exist.
func loadConfig(cmd *cobra.Command, _ []string) error {
	config, err := utils.LoadConfig(configFilePath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	if logLevel != "" {
		if config.LogLevel, err = log.ParseLevel(logLevel); err != nil {
			return errors.Wrap(err, "invalid --log-level")
		}
	}
	if outputFormat != "" {
		if config.Format, err = utils.ParseFormat(outputFormat); err != nil {
			return errors.Wrap(err, "invalid --format")
		}
	}

	// Don't output command usage once the arguments are known to be correct.
	cmd.SilenceUsage = true

	log.SetLevel(config.LogLevel)
	log.Debug("using %v for configuration", configFilePath)
	utils.InstanceConfig = config
	return nil
}
