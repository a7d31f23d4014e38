package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/mozzart/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	conf       = config.Default()
	logger     = log.Default()
)

var rootCmd = &cobra.Command{
	Use:   "mozzart",
	Short: "Pitch, interval, scale and chord arithmetic",
	Long:  `Builds scales and chords from MIDI pitches and converts pitch sequences to intervals and back.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		conf = loaded
		setupLogger(conf.LogLevel)
		logger.Debug("running", "command", cmd.Name(), "args", args)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default $MOZZART_CONFIG or ./mozzart.yaml)")
}

func setupLogger(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "mozzart",
	})
	log.SetDefault(logger)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
	}
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
