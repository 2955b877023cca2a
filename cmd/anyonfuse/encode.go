package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/anyonfuse/fusion"
)

func (a *app) encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <scenario>",
		Short: "Print the total charge and the qubit-defining fusions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.loadScenario(args[0])
			if err != nil {
				return err
			}
			st, err := a.build(sc)
			if err != nil {
				return err
			}
			var opts []fusion.Option
			if a.cfg.StrictTotalCharge {
				opts = append(opts, fusion.WithStrictTotalCharge())
			}
			f, err := fusion.New(st, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if total, err := f.TotalCharge(); err == nil {
				fmt.Fprintf(out, "total: %s\n", total)
			} else {
				a.log.Info("no single total charge", "err", err)
			}

			enc, err := f.QubitEncoding()
			if err != nil {
				return err
			}
			if len(enc) == 0 {
				fmt.Fprintln(out, "encoding: none")
				return nil
			}
			fmt.Fprintf(out, "encoding: %v\n", enc)

			return nil
		},
	}
	cmd.Flags().Bool("strict", false, "require exactly one Vacuum or one Psi total")
	_ = a.v.BindPFlag("strict_total_charge", cmd.Flags().Lookup("strict"))

	return cmd
}
