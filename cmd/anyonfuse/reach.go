package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/anyonfuse/fusion"
	"github.com/katalvlaran/anyonfuse/model"
)

func (a *app) reachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reach <scenario> [charge...]",
		Short: "Report which total charges the anyons can fuse to",
		Long:  "reach folds every anyon's charge, ignoring the tree, and reports whether each charge (all of the category's by default) is a possible total.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.loadScenario(args[0])
			if err != nil {
				return err
			}
			cat, err := sc.Category()
			if err != nil {
				return err
			}
			st, err := a.build(sc)
			if err != nil {
				return err
			}
			f, err := fusion.New(st)
			if err != nil {
				return err
			}

			charges := cat.Charges()
			if len(args) > 1 {
				charges = nil
				for _, name := range args[1:] {
					c, err := model.ParseCharge(cat, name)
					if err != nil {
						return err
					}
					charges = append(charges, c)
				}
			}

			width := runewidth.StringWidth("charge")
			for _, c := range charges {
				width = max(width, runewidth.StringWidth(c.String()))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  reachable\n", runewidth.FillRight("charge", width))
			for _, c := range charges {
				ok, err := f.VerifyFusionResult(c)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %t\n", runewidth.FillRight(c.String(), width), ok)
			}

			return nil
		},
	}
}
