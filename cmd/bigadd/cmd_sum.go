package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/bigadd/internal/calc"
)

func (a *app) sumCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sum [operands...]",
		Short: "Add any number of operands",
		Long: `Add any number of operands.

Operands come from the arguments, from --file, or from stdin when neither is
given. Files and stdin hold one operand per line; blank lines and lines
starting with '#' are ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			operands := args
			switch {
			case file != "":
				fromFile, err := calc.ReadOperandsFile(file)
				if err != nil {
					return err
				}
				operands = append(append([]string(nil), args...), fromFile...)
			case len(args) == 0:
				fromStdin, err := calc.ParseOperands(cmd.InOrStdin())
				if err != nil {
					return err
				}
				operands = fromStdin
			}

			res, err := a.calc.Sum(cmd.Context(), operands)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read operands from this file, one per line")
	return cmd
}
