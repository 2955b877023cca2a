package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/anyonfuse/basis"
	"github.com/katalvlaran/anyonfuse/model"
	"github.com/katalvlaran/anyonfuse/scenario"
)

func (a *app) enumerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enumerate <anyons>",
		Short: "List the fusion bases of n anyons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("anyon count %q: %w", args[0], err)
			}
			total, err := basis.Count(n)
			if err != nil {
				return err
			}
			limit := a.cfg.EnumerateLimit
			emit, _ := cmd.Flags().GetString("emit")

			var anyons []model.Anyon
			var cat model.Category
			if emit != "" {
				if cat, err = a.cfg.Category(); err != nil {
					return err
				}
				for i := 0; i < n; i++ {
					anyons = append(anyons, model.MustAnyon(strconv.Itoa(i), cat.NonAbelian(), model.Position{X: float64(i)}))
				}
			}

			out := cmd.OutOrStdout()
			shown := 0
			var emitErr error
			err = basis.Enumerate(n, func(b basis.Basis) bool {
				if limit > 0 && shown >= limit {
					return false
				}
				shown++
				if emit == "" {
					fmt.Fprintf(out, "%d: %s\n", shown, b)
					return true
				}
				data, err := scenario.FromBasis(cat, anyons, b).Encode(scenario.Format(emit))
				if err != nil {
					emitErr = err
					return false
				}
				fmt.Fprintf(out, "# basis %d\n%s", shown, data)
				if emit == string(scenario.YAML) {
					fmt.Fprintln(out, "---")
				}
				return true
			})
			if err != nil {
				return err
			}
			if emitErr != nil {
				return emitErr
			}
			a.log.Debug("enumeration finished", "anyons", n, "shown", shown, "total", total)
			fmt.Fprintf(out, "# %d of %d bases\n", shown, total)

			return nil
		},
	}
	cmd.Flags().Int("limit", 64, "stop after this many bases (0 for all)")
	cmd.Flags().String("emit", "", "print each basis as a scenario document (toml|yaml)")
	_ = a.v.BindPFlag("enumerate_limit", cmd.Flags().Lookup("limit"))

	return cmd
}
