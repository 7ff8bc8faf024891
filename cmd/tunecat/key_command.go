package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tunecat/internal/canon"
)

func newKeyCommand() *cobra.Command {
	var strict bool
	var verbose bool

	cmd := &cobra.Command{
		Use:         "key <field>...",
		Short:       "Print the canonical key of one or more fields",
		Example:     "  tunecat key \"Shape of You\" \"Ed Sheeran\"",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var key canon.Key
			if strict {
				var err error
				key, err = canon.DeriveKeyStrict(args...)
				if err != nil {
					return err
				}
			} else {
				key = canon.DeriveKey(args...)
			}

			out := cmd.OutOrStdout()
			if verbose {
				rows := make([][]string, 0, len(args))
				for i, field := range args {
					rows = append(rows, []string{fmt.Sprint(i + 1), field, canon.Normalize(field)})
				}
				fmt.Fprintln(out, renderTable([]string{"#", "Field", "Normalized"}, rows, 1))
			}
			fmt.Fprintln(out, key)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on fields that are not valid UTF-8")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the normalized form of each field")
	return cmd
}
