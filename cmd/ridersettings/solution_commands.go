package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ridersettings/internal/solutionname"
)

type solutionNameOutput struct {
	SolutionName string `json:"solutionName"`
	UsesDefault  bool   `json:"usesDefault"`
}

func newGetCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the stored solution name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := ctx.panel(cmd)
			if err != nil {
				return err
			}
			name, err := panel.GetSolutionName()
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, solutionNameOutput{SolutionName: name, UsesDefault: name == ""})
			}
			fmt.Fprintln(cmd.OutOrStdout(), displayName(name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newSetCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <name>...",
		Short: "Sanitize and store a solution name override",
		Long: "Sanitize and store a solution name override.\n\n" +
			"Arguments are joined with spaces before sanitizing. Pass \"\" to clear the\n" +
			"override and fall back to the default name.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := ctx.panel(cmd)
			if err != nil {
				return err
			}
			current, err := panel.GetSolutionName()
			if err != nil {
				return err
			}

			raw := strings.Join(args, " ")
			action, err := panel.HandleEdit(current, raw)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			switch {
			case action.Kind == solutionname.ActionNone:
				fmt.Fprintln(out, renderStatusLine(solutionname.Label, statusInfo, "unchanged: "+displayName(current), colorize))
			case action.Value == "":
				fmt.Fprintln(out, renderStatusLine(solutionname.Label, statusOK, "cleared; default naming applies", colorize))
			default:
				fmt.Fprintln(out, renderStatusLine(solutionname.Label, statusOK, "set to "+action.Value, colorize))
			}
			if action.Kind == solutionname.ActionPersist && action.Value != strings.TrimSpace(raw) && strings.TrimSpace(raw) != "" {
				fmt.Fprintln(out, renderStatusLine("Input", statusWarn, fmt.Sprintf("sanitized from %q", raw), colorize))
			}
			return nil
		},
	}
	return cmd
}

func newSanitizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "sanitize <text>...",
		Short:       "Print the sanitized form of a solution name without storing it",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), solutionname.Sanitize(strings.Join(args, " ")))
			return nil
		},
	}
}

func newPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of Rider.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.store(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}
}

func displayName(name string) string {
	if name == "" {
		return "(default)"
	}
	return name
}
