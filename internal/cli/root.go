// Package cli builds the indent command tree
package cli

import (
	"embed"
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/indent/internal/topics"
	"github.com/arthur-debert/indent/internal/version"
	"github.com/arthur-debert/indent/pkg/config"
	"github.com/arthur-debert/indent/pkg/errors"
	"github.com/arthur-debert/indent/pkg/logging"
)

//go:embed topics
var topicsFS embed.FS

// configFlags maps command line flags to the config keys they override
var configFlags = map[string]string{
	"indent": "indent.base",
	"style":  "tree.style",
	"types":  "tree.show_types",
	"sort":   "tree.sort_keys",
	"format": "output.format",
	"styles": "output.styles",
}

// app is the state shared by the commands of one invocation
type app struct {
	fs         afero.Fs
	configPath string
	verbosity  int
}

// load builds the configuration for cmd, with the flags the user set on the
// command line taking precedence
func (a *app) load(cmd *cobra.Command) (*config.Config, error) {
	overrides := make(map[string]interface{})
	for name, key := range configFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(a.configPath, overrides)
	if err != nil {
		return nil, err
	}
	if cfg.Logging.Verbosity > a.verbosity {
		zerolog.SetGlobalLevel(logging.LevelFor(cfg.Logging.Verbosity))
	}
	log.Debug().Int("overrides", len(overrides)).Msg("Configuration loaded")
	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: fsys}

	rootCmd := &cobra.Command{
		Use:     "indent",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installTopics(rootCmd)

	return rootCmd
}

func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}

	m, err := topics.New(sub, renderer)
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m.Install(rootCmd)
}
