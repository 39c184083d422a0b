package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ridersettings/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the project can store a solution name override",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			title := cases.Title(language.English)

			for _, line := range renderSectionHeader("Project "+cfg.ProjectRoot(), colorize) {
				fmt.Fprintln(out, line)
			}

			failed := 0
			for _, result := range preflight.RunAll(cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(title.String(result.Name), kind, result.Detail, colorize))
			}

			if failed > 0 {
				return errors.New("project checks failed")
			}
			return nil
		},
	}
}
