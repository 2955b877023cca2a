package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/anyonfuse/fusion"
)

func (a *app) minAnyonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "min-anyons <qubits>",
		Short: "List the anyon counts that realise exactly k qubits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("qubit count %q: %w", args[0], err)
			}
			cat, err := a.cfg.Category()
			if err != nil {
				return err
			}
			counts, err := fusion.MinimumPossibleAnyons(cat, q)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d qubit(s): %v\n", cat, q, counts)

			return nil
		},
	}
}
