package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/botw-saveconv/internal/config"
	"github.com/conn-castle/botw-saveconv/internal/confirm"
	"github.com/conn-castle/botw-saveconv/internal/logging"
	"github.com/conn-castle/botw-saveconv/internal/messages"
	"github.com/conn-castle/botw-saveconv/internal/pipeline"
	"github.com/conn-castle/botw-saveconv/internal/savefile"
)

const (
	flagNoConfirm    = "no-confirm"
	flagJobs         = "jobs"
	flagScope        = "scope"
	flagStrict       = "strict"
	flagConfig       = "config"
	flagVerbose      = "verbose"
	flagVerboseShort = "v"
)

var (
	getwd             = os.Getwd
	loadConfig        = config.Load
	defaultConfigPath = config.DefaultPath
	runPipeline       = pipeline.Run
)

type rootFlags struct {
	noConfirm  bool
	jobs       int
	scope      string
	strict     bool
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags, args[0])
		},
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.Flags().BoolVar(&flags.noConfirm, flagNoConfirm, false, messages.FlagNoConfirm)
	cmd.Flags().IntVar(&flags.jobs, flagJobs, 0, messages.FlagJobs)
	cmd.Flags().StringVar(&flags.scope, flagScope, string(config.ScopeInput), messages.FlagScope)
	cmd.Flags().BoolVar(&flags.strict, flagStrict, false, messages.FlagStrict)
	cmd.PersistentFlags().StringVar(&flags.configPath, flagConfig, "", messages.FlagConfig)
	cmd.PersistentFlags().BoolVarP(&flags.verbose, flagVerbose, flagVerboseShort, false, messages.FlagVerbose)
	cmd.AddCommand(newDoctorCmd(flags))
	return cmd
}

func runConvert(cmd *cobra.Command, flags *rootFlags, inputDir string) error {
	cfg, source, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if source != "" {
		logger.Debug(fmt.Sprintf(messages.ConfigLoadedFmt, source))
	}

	opts := pipeline.Options{
		InputDir:  inputDir,
		NoConfirm: flags.noConfirm,
		Config:    cfg,
	}
	if cfg.Scope == config.ScopeWorkingDir {
		wd, err := getwd()
		if err != nil {
			return err
		}
		opts.WorkDir = wd
	}

	deps := pipeline.Deps{
		Detector:  savefile.Detector{},
		Converter: savefile.Converter{},
		Prompter:  newPrompter(cfg.Prompt, cmd.InOrStdin(), cmd.OutOrStdout()),
		Logger:    logger,
		Out:       cmd.OutOrStdout(),
		ErrOut:    cmd.ErrOrStderr(),
	}
	_, err = runPipeline(cmd.Context(), opts, deps)
	return err
}

// resolveConfig layers defaults, the config file, and explicitly set flags.
// It returns the path the config was read from, or "" when none was found.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, string, error) {
	path := flags.configPath
	required := path != ""
	var err error
	if required {
		path, err = config.ExpandPath(path)
	} else {
		path, err = defaultConfigPath()
	}

	cfg := config.Default()
	source := ""
	if err != nil && required {
		return config.Config{}, "", err
	}
	if err == nil {
		cfg, err = loadConfig(path, required)
		if err != nil {
			return config.Config{}, "", err
		}
		if fileExists(path) {
			source = path
		}
	}

	changed := cmd.Flags().Changed
	if changed(flagJobs) {
		cfg.Jobs = flags.jobs
	}
	if changed(flagScope) {
		cfg.Scope = config.Scope(flags.scope)
	}
	if changed(flagStrict) {
		cfg.Strict = flags.strict
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(messages.ConfigFlagsSource); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}

func newPrompter(mode config.PromptMode, in io.Reader, out io.Writer) confirm.Prompter {
	if mode == config.PromptForm {
		return confirm.NewFormPrompter(in, out)
	}
	return confirm.LinePrompter{In: in, Out: out}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
