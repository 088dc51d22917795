package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	var typ string
	cmd := &cobra.Command{
		Use:   "get FILE SECTION FIELD",
		Short: "Read one value, optionally coerced to a type",
		Long: `Read the value stored under SECTION*FIELD. An empty SECTION looks up
FIELD on its own. With --type the value is coerced the way the particle
loaders read it (` + strings.Join(valueTypes, ", ") + `).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore(args[0])
			if err != nil {
				return err
			}
			h := key(args[1], args[2])
			out, ok, err := coerce(s, h, typ)
			if err != nil {
				return err
			}
			if !ok {
				if s.Has(h) {
					return fmt.Errorf("%s*%s (%s) cannot be read as %s", args[1], args[2], h, typ)
				}
				return fmt.Errorf("%s*%s (%s) not found", args[1], args[2], h)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "", "Coerce to type")
	return cmd
}
