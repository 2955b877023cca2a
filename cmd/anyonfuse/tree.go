package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/anyonfuse/fusion"
	"github.com/katalvlaran/anyonfuse/scenario"
)

func (a *app) treeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <scenario>",
		Short: "Render the fusion tree of a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			if !watch {
				sc, err := a.loadScenario(args[0])
				if err != nil {
					return err
				}
				return a.renderTree(cmd.OutOrStdout(), sc)
			}

			return scenario.Watch(cmd.Context(), args[0], func(sc *scenario.Scenario, err error) {
				if err == nil {
					if sc.Model == "" {
						sc.Model = a.cfg.Model
					}
					err = a.renderTree(cmd.OutOrStdout(), sc)
				}
				if err != nil {
					a.log.Error("scenario reload failed", "path", args[0], "err", err)
				}
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "re-render whenever the file changes")

	return cmd
}

func (a *app) renderTree(w io.Writer, sc *scenario.Scenario) error {
	st, err := a.build(sc)
	if err != nil {
		return err
	}
	f, err := fusion.New(st)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, f)

	return err
}
