package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) basisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basis <scenario>",
		Short: "Check that a scenario's operations form a complete fusion basis",
		Long:  "basis validates the operations exactly as written: they must be sorted by time and reduce every anyon to one charge.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.loadScenario(args[0])
			if err != nil {
				return err
			}
			b, err := sc.Basis()
			if err != nil {
				return err
			}
			if err := b.Validate(len(sc.Anyons)); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %v\n", err)
				return fmt.Errorf("%s is not a basis", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %d operations over %d anyons\n", b.Len(), len(sc.Anyons))

			return nil
		},
	}
}
