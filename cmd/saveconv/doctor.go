package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/botw-saveconv/internal/config"
	"github.com/conn-castle/botw-saveconv/internal/detect"
	"github.com/conn-castle/botw-saveconv/internal/discover"
	"github.com/conn-castle/botw-saveconv/internal/doctor"
	"github.com/conn-castle/botw-saveconv/internal/messages"
	"github.com/conn-castle/botw-saveconv/internal/savefile"
)

func newDoctorCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			inputDir := args[0]
			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, inputDir)

			var allResults []doctor.Result

			cfg, source, err := resolveConfig(cmd, flags)
			if err != nil {
				cfg = config.Default()
			}
			allResults = append(allResults, doctor.CheckConfig(source, err))

			detection, _ := doctor.CheckDetection(detect.RealSystem{}, inputDir, savefile.Detector{})
			allResults = append(allResults, detection)

			root := inputDir
			if cfg.Scope == config.ScopeWorkingDir {
				wd, err := getwd()
				if err != nil {
					return err
				}
				root = wd
			}
			allResults = append(allResults, doctor.CheckSaves(discover.RealSystem{}, root, cfg.Pattern)...)

			for _, r := range allResults {
				printResult(out, r)
			}
			_, _ = fmt.Fprintln(out)

			switch {
			case doctor.HasFailure(allResults):
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			case doctor.HasWarning(allResults):
				_, _ = fmt.Fprintln(out, color.YellowString(messages.DoctorWarnSummary))
			default:
				_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.scope, flagScope, string(config.ScopeInput), messages.FlagScope)
	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		switch {
		case i == 0:
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
		case line == "":
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
		default:
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
		}
	}
}
