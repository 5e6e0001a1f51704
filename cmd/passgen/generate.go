package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

var errNoClasses = errors.New("please select at least one option for the password")

func generateCommand(cfg config.Config) *cobra.Command {
	var (
		length                        int
		lower, upper, digits, symbols bool
		count                         int
		seed                          uint64
		quiet                         bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var src generator.Source
			if seed != 0 {
				src = rand.New(rand.NewPCG(seed, seed))
			}

			limits := service.Limits{
				Min:     cfg.Password.MinLength,
				Max:     cfg.Password.MaxLength,
				Default: cfg.Password.DefaultLength,
			}
			svc := service.NewGeneratorService(generator.New(src), limits, nil, nil)

			req := model.GenerateRequest{
				Length:    length,
				Lowercase: &lower,
				Uppercase: &upper,
				Numbers:   &digits,
				Symbols:   &symbols,
			}

			out := cmd.OutOrStdout()
			for i := 0; i < max(count, 1); i++ {
				resp, err := svc.Generate(cmd.Context(), req)
				if err != nil {
					if errors.Is(err, generator.ErrEmptySelection) {
						return errNoClasses
					}
					return err
				}

				fmt.Fprintln(out, resp.Password)
				if !quiet {
					printStrength(out, resp.Strength)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", cfg.Password.DefaultLength,
		fmt.Sprintf("password length, clamped to [%d, %d]", cfg.Password.MinLength, cfg.Password.MaxLength))
	cmd.Flags().BoolVar(&lower, "lower", true, "include lowercase letters")
	cmd.Flags().BoolVar(&upper, "upper", true, "include uppercase letters")
	cmd.Flags().BoolVar(&digits, "digits", true, "include digits")
	cmd.Flags().BoolVar(&symbols, "symbols", true, "include symbols")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible output (0 picks a random seed)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print passwords only")

	return cmd
}
