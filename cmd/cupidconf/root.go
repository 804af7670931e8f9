package cupidconf

import (
	"errors"
	"fmt"

	"github.com/arthur-debert/cupidconf/internal/version"
	"github.com/arthur-debert/cupidconf/pkg/conf"
	"github.com/arthur-debert/cupidconf/pkg/logging"
	"github.com/arthur-debert/cupidconf/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// ErrNoMatch is returned by commands whose negative result has already
// been printed; the caller should exit non-zero without reporting an
// error.
var ErrNoMatch = errors.New("no match")

// rootOptions holds the persistent flag values shared by all commands.
type rootOptions struct {
	verbosity int
	cfgFile   string
	noColor   bool
}

// loadConf opens the configured file, falling back to the default
// search path when --file was not given.
func (o *rootOptions) loadConf() (*conf.Conf, error) {
	path := o.cfgFile
	if path == "" {
		path = paths.DefaultConfigPath()
	}
	return conf.Load(path)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "cupidconf",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "file", "f", "",
		"Config file (default: $CUPIDCONF_FILE, then the XDG config location)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false,
		"Disable colored output")

	rootCmd.AddCommand(
		newGetCmd(opts),
		newListCmd(opts),
		newCheckCmd(opts),
		newKeysCmd(opts),
		newDumpCmd(opts),
		newFormatCmd(),
		newVersionCmd(),
		newCompletionCmd(),
		newManCmd(rootCmd),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cupidconf version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "CUPIDCONF",
				Section: "1",
			}
			return doc.GenManTree(rootCmd, header, "/tmp")
		},
	}
}
