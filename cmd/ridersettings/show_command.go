package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

type showOutput struct {
	Label        string `json:"label"`
	SolutionName string `json:"solutionName"`
	UsesDefault  bool   `json:"usesDefault"`
	DefaultName  string `json:"defaultName"`
	Path         string `json:"path"`
	FilePresent  bool   `json:"filePresent"`
	Version      int    `json:"version,omitempty"`
	Help         string `json:"help"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the solution name setting as the settings panel would",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.store(cmd)
			if err != nil {
				return err
			}
			panel, err := ctx.panel(cmd)
			if err != nil {
				return err
			}
			view, err := panel.View()
			if err != nil {
				return err
			}
			record, exists, err := store.LoadRecord()
			if err != nil {
				return err
			}

			output := showOutput{
				Label:        view.Label,
				SolutionName: view.Value,
				UsesDefault:  view.UsesDefault,
				DefaultName:  filepath.Base(cfg.ProjectRoot()),
				Path:         store.Path(),
				FilePresent:  exists,
				Version:      record.Version,
				Help:         view.Help,
			}
			if asJSON {
				return writeJSON(cmd, output)
			}

			value := output.SolutionName
			if output.UsesDefault {
				value = fmt.Sprintf("(default: %s)", output.DefaultName)
			}
			version := "-"
			if output.Version > 0 {
				version = strconv.Itoa(output.Version)
			}
			rows := [][]string{
				{output.Label, value},
				{"Settings file", output.Path},
				{"File present", yesNo(output.FilePresent)},
				{"Schema version", version},
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows))
			fmt.Fprintln(out)
			fmt.Fprintln(out, output.Help)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
