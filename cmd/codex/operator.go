package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/operator-codex/internal/errors"
	"github.com/KirkDiggler/operator-codex/internal/services/catalog"
)

func newOperatorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "operator <id>",
		Short: "Print the full profile of one operator as JSON",
		Long: `Build one operator from character_table and print every projection
(detail, skills, building skills, voices, stories, skins, modules) as indented JSON.`,
		Example: "  codex operator char_002_amiya --data-dir ./data/excel",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperator(cmd, args[0])
		},
	}
}

func (a *app) runOperator(cmd *cobra.Command, id string) error {
	defer a.close()

	output, err := a.service.GetOperator(cmd.Context(), &catalog.GetOperatorInput{
		ID:          id,
		Recruitable: a.isRecruitable(id),
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output.Operator.Profile()); err != nil {
		return errors.Wrapf(err, "failed to encode operator %s", id)
	}

	return nil
}
