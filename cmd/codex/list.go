package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/operator-codex/internal/services/catalog"
)

func newListCmd(a *app) *cobra.Command {
	var includeUnavailable bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every operator",
		Long:  `Build every operator in character_table and print one line per operator, sorted by id.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd, includeUnavailable)
		},
	}

	cmd.Flags().BoolVar(&includeUnavailable, "include-unavailable", false, "include operators that cannot be obtained")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, includeUnavailable bool) error {
	defer a.close()

	output, err := a.service.ListOperators(cmd.Context(), &catalog.ListOperatorsInput{
		RecruitableIDs:     a.cfg.RecruitableIDs,
		IncludeUnavailable: includeUnavailable,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLASS\tRARITY\tTAGS")
	for _, op := range output.Operators {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", op.ID, op.Name, op.Class, op.Rarity, strings.Join(op.Tags, ","))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d operators, %d skipped\n", len(output.Operators), output.Skipped)
	return nil
}
