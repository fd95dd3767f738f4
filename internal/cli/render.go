package cli

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/indent/pkg/config"
	"github.com/arthur-debert/indent/pkg/logging"
	"github.com/arthur-debert/indent/pkg/style"
	"github.com/arthur-debert/indent/pkg/tree"
)

func newRenderCmd(a *app) *cobra.Command {
	var inputFormat string

	cmd := &cobra.Command{
		Use:     "render [file|-]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return []string{"yaml", "yml", "toml", "json", "xml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.render")
			defer logging.LogOperationStart(logger, "render")()

			cfg, err := a.load(cmd)
			if err != nil {
				return err
			}

			root, err := readDocument(a.fs, cmd.InOrStdin(), args, inputFormat)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			painter, err := painterFor(cfg, out)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("style", string(cfg.Tree.Style)).
				Bool("painted", painter != nil).
				Msg("Rendering document")
			return tree.Render(out, root, cfg.Indent.Base, cfg.TreeOptions(painter))
		},
	}

	cmd.Flags().StringP("indent", "i", "", MsgFlagIndent)
	cmd.Flags().StringP("style", "s", "", MsgFlagStyle)
	cmd.Flags().BoolP("types", "t", false, MsgFlagTypes)
	cmd.Flags().Bool("sort", false, MsgFlagSort)
	cmd.Flags().StringP("format", "f", "", MsgFlagFormat)
	cmd.Flags().String("styles", "", MsgFlagStyles)
	cmd.Flags().StringVar(&inputFormat, "input-format", "", MsgFlagInputFormat)

	_ = cmd.RegisterFlagCompletionFunc("style", fixedCompletion(string(tree.StylePlain), string(tree.StyleBranch)))
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion("auto", "term", "text"))
	formats := make([]string, len(tree.Formats))
	for i, f := range tree.Formats {
		formats[i] = string(f)
	}
	_ = cmd.RegisterFlagCompletionFunc("input-format", fixedCompletion(formats...))

	return cmd
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// readDocument loads the document named by args, or standard input for "-"
// or no argument. Standard input defaults to YAML.
func readDocument(fsys afero.Fs, stdin io.Reader, args []string, inputFormat string) (*tree.Node, error) {
	var format tree.Format
	if inputFormat != "" {
		f, err := tree.ParseFormat(inputFormat)
		if err != nil {
			return nil, err
		}
		format = f
	}

	if len(args) == 0 || args[0] == "-" {
		if format == "" {
			format = tree.FormatYAML
		}
		return tree.LoadReader(stdin, format)
	}
	return tree.Load(fsys, args[0], format)
}

// painterFor returns the painter for out, or nil when the output is plain
// text. FormatAuto paints only terminals.
func painterFor(cfg *config.Config, out io.Writer) (tree.Painter, error) {
	format := cfg.Output.Format
	if file, ok := out.(*os.File); ok {
		format = style.Resolve(format, file)
	} else if format == style.FormatAuto {
		format = style.FormatText
	}
	if format != style.FormatTerminal {
		return nil, nil
	}

	reg := style.Default()
	if cfg.Output.Styles != "" {
		loaded, err := style.LoadFile(cfg.Output.Styles)
		if err != nil {
			return nil, err
		}
		reg = loaded
	}
	return style.PainterFor(reg, out, format), nil
}
