package cupidconf

import (
	"fmt"

	"github.com/arthur-debert/cupidconf/pkg/errors"
	"github.com/arthur-debert/cupidconf/pkg/logging"
	"github.com/arthur-debert/cupidconf/pkg/output"
	"github.com/spf13/cobra"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "get <key-pattern>",
		Short:   MsgGetShort,
		Long:    MsgGetLong,
		Example: MsgGetExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadConf()
			if err != nil {
				return err
			}

			value, ok := c.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound,
					"no entry matches key pattern %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list <key-pattern>",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"get-list"},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.list")

			c, err := opts.loadConf()
			if err != nil {
				return err
			}

			values := c.GetList(args[0])
			logger.Debug().
				Str("pattern", args[0]).
				Int("matches", len(values)).
				Msg("List query done")

			renderer := output.NewRenderer(cmd.OutOrStdout(), opts.noColor)
			return renderer.RenderValues(values)
		},
	}
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check <key> <candidate>",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadConf()
			if err != nil {
				return err
			}

			if c.ValueInList(args[0], args[1]) {
				fmt.Fprintln(cmd.OutOrStdout(), "true")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "false")
			return ErrNoMatch
		},
	}
}

func newKeysCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: MsgKeysShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadConf()
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(cmd.OutOrStdout(), opts.noColor)
			return renderer.RenderKeys(c.Entries())
		},
	}
}

func newDumpCmd(opts *rootOptions) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:     "dump",
		Short:   MsgDumpShort,
		Long:    MsgDumpLong,
		Example: MsgDumpExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(formatName)
			if err != nil {
				return err
			}

			c, err := opts.loadConf()
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(cmd.OutOrStdout(), opts.noColor)
			return renderer.RenderEntries(c.Entries(), format)
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "text",
		"Output format (text, json, toml, yaml, xml)")
	return cmd
}
