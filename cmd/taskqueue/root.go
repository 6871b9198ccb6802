package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "TASKQUEUE"

// config keys
const (
	keyDebug  = "debug"
	keyOutput = "output"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "taskqueue",
		Short:         "Build and query a priority-ordered task queue.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool(keyDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().StringP(keyOutput, "o", string(formatText), "output format: text, json or yaml")

	if err := v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(errors.Wrap(err, "failed to bind persistent flags"))
	}

	rootCmd.AddCommand(newRunCmd(v), newDemoCmd(v))

	return rootCmd
}

// newLogger builds a development logger in debug mode and a production
// logger otherwise.
func newLogger(v *viper.Viper) (*zap.Logger, error) {
	if v.GetBool(keyDebug) {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func outputFormat(v *viper.Viper) (format, error) {
	f := format(strings.ToLower(strings.TrimSpace(v.GetString(keyOutput))))
	switch f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", errors.Errorf("unknown output format %q", f)
	}
}
