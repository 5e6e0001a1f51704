package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/strength"
)

func strengthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strength PASSWORD",
		Short: "Score the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.NewStrengthService(nil).Evaluate(model.StrengthRequest{Password: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Score: %d/%d\n", resp.Score, strength.MaxScore)
			printStrength(out, resp)
			if resp.Estimate != nil {
				fmt.Fprintf(out, "Estimated crack time: %s\n", resp.Estimate.CrackTime)
				if resp.Estimate.Truncated {
					fmt.Fprintln(out, "(estimate covers a prefix of the password)")
				}
			}
			return nil
		},
	}
}
