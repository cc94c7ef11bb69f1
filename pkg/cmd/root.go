package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekruzvatanshoev/carstats/pkg/carstats/config"
	"github.com/nekruzvatanshoev/carstats/pkg/carstats/logger"
	"github.com/nekruzvatanshoev/carstats/pkg/carstats/output"
	"github.com/nekruzvatanshoev/carstats/pkg/carstats/service"
)

var RootCmd = NewRootCmd()

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Get().Error("command failed", "err", err)
		os.Exit(1)
	}
}

// rootOptions carries the state shared by every subcommand once the
// persistent pre-run has loaded the configuration.
type rootOptions struct {
	configFile string
	v          *viper.Viper

	cfg *config.Config
	log *slog.Logger
	svc *service.Service
}

// NewRootCmd builds the carstats command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:           RootCmdName,
		Short:         RootCmdShort,
		Long:          RootCmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "optional config file (yaml, json or toml)")
	flags.StringP("data", "d", "cars.json", "JSON file holding the car records")
	flags.String("format", output.FormatText, "output format (text|json|yaml)")
	flags.String("log-level", "WARN", "log level (DEBUG|INFO|WARN|ERROR)")
	flags.String("log-format", "text", "log format (text|json)")
	opts.v.BindPFlags(flags)

	cmd.AddCommand(
		newListCmd(opts),
		newSortCmd(opts),
		newMileageCmd(opts),
		newColorsCmd(opts),
		newExpensiveByModelCmd(opts),
		newMostExpensiveCmd(opts),
		newComponentsCmd(opts),
		newPriceRangeCmd(opts),
		newSortedComponentsCmd(opts),
		newStatsCmd(opts),
	)

	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.v, o.configFile)
	if err != nil {
		return err
	}
	if !output.IsValidFormat(cfg.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", cfg.Format, output.ValidFormats)
	}
	o.cfg = cfg

	o.log = logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	o.log.Debug("started command", "cmd", cmd.Name(), "data", cfg.DataFile)
	return nil
}

// query wraps a subcommand body that needs the car collection. The data file
// is only read here, so help and completion work without it.
func (o *rootOptions) query(run func(cmd *cobra.Command, svc *service.Service) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if o.svc == nil {
			svc, err := service.Load(o.cfg.DataFile)
			if err != nil {
				return err
			}
			o.log.Info("loaded cars", "data", o.cfg.DataFile, "count", svc.Len())
			o.svc = svc
		}
		return run(cmd, o.svc)
	}
}

func (o *rootOptions) formatter(cmd *cobra.Command) *output.Formatter {
	return &output.Formatter{Format: o.cfg.Format, Writer: cmd.OutOrStdout()}
}
