package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flexview"
	"github.com/grindlemire/go-flexview/internal/debug"
)

// settings mirrors the persistent flags, the FLEXVIEW_* environment and the config file.
type settings struct {
	Scale        float64 `mapstructure:"scale"`
	WebFlexBasis bool    `mapstructure:"web_flex_basis"`
	Debug        string  `mapstructure:"debug"`
}

// app holds what the subcommands share once the root command initialized.
type app struct {
	v        *viper.Viper
	settings settings
	cfg      *flexview.Config
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "flexview",
		Short:         "Lay out YAML view trees with the flexbox engine",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cfgFile)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			flexview.SetLogger(nil)
			return debug.Close()
		},
	}
	root.SetVersionTemplate("flexview version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./flexview.yaml if present)")
	pf.Float64("scale", 1, "point scale factor for rounding, 0 disables rounding")
	pf.Bool("web-flex-basis", true, "use web-compatible flex basis")
	pf.String("debug", "", "write debug logs to this file (FLEXVIEW_DEBUG)")
	for _, name := range []string{"scale", "web-flex-basis", "debug"} {
		_ = a.v.BindPFlag(strings.ReplaceAll(name, "-", "_"), pf.Lookup(name))
	}

	root.AddCommand(newLayoutCmd(a), newRenderCmd(a), newVersionCmd())
	return root
}

// init reads configuration and prepares logging and the layout config.
func (a *app) init(cfgFile string) error {
	if err := a.readConfig(cfgFile); err != nil {
		return err
	}

	var s settings
	if err := a.v.Unmarshal(&s); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	a.settings = s

	if s.Debug != "" {
		l, err := debug.Init(s.Debug, debug.DefaultOptions)
		if err != nil {
			return err
		}
		a.logger = l
	}
	flexview.SetLogger(a.logger)

	cfg, err := flexview.NewConfig(
		flexview.WithPointScaleFactor(s.Scale),
		flexview.WithWebFlexBasis(s.WebFlexBasis),
	)
	if err != nil {
		return fmt.Errorf("invalid layout config: %w", err)
	}
	a.cfg = cfg

	a.logger.Debug("configured",
		zap.Float64("scale", s.Scale),
		zap.Bool("webFlexBasis", s.WebFlexBasis),
		zap.String("configFile", a.v.ConfigFileUsed()))
	return nil
}

func (a *app) readConfig(cfgFile string) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("flexview")
	}

	a.v.SetEnvPrefix("FLEXVIEW")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}
