package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/toolbench/toolbench/internal/config"
	"github.com/toolbench/toolbench/internal/logging"
)

// cliState holds what commands share during one Run: the --config flag and the lazily loaded configuration.
type cliState struct {
	configPath string

	once     sync.Once
	cfg      config.Config
	err      error
	closeLog func() error
}

// config loads the configuration on first use and installs the logger it describes. Errors are exit code 1.
func (s *cliState) config(cmd *cobra.Command) (config.Config, error) {
	s.once.Do(func() {
		s.cfg, s.err = config.Load(config.Options{Path: s.configPath})
		if s.err != nil {
			return
		}
		s.closeLog, s.err = logging.Setup(s.cfg.Log, cmd.ErrOrStderr())
	})
	if s.err != nil {
		return config.Config{}, exitError{code: 1, err: s.err}
	}
	return s.cfg, nil
}

func (s *cliState) close() {
	if s.closeLog != nil {
		_ = s.closeLog()
	}
}

func newRootCommand() (*cobra.Command, *cliState) {
	state := &cliState{}

	root := &cobra.Command{
		Use:   "toolbench",
		Short: "toolbench compares text and works with colors.",
		Long: `toolbench compares text by characters, words or lines, converts colors between
HEX, RGB, HSL, HSV and OKLCH, and derives harmonies, shade scales and WCAG
contrast results. "toolbench serve" exposes the same operations over HTTP.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageErrorf("missing required subcommand")
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})
	root.PersistentFlags().StringVar(&state.configPath, "config", "", "config file (default: nearest "+config.FileName+")")

	root.AddCommand(
		newDiffCommand(state),
		newColorCommand(state),
		newServeCommand(state),
		newConfigCommand(state),
		newVersionCommand(),
	)
	return root, state
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  withUsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "toolbench %s\n", Version)
			return err
		},
	}
}

func newConfigCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as JSON",
		Args:  withUsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.config(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cfg)
		},
	}
}
