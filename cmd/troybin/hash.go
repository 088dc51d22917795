package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHashCmd(a *app) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "hash NAME...",
		Short: "Print the key hash of names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				h := key(section, name)
				a.logger.Trace("🔑 Hashed", "section", section, "name", name, "hash", h)
				if section == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h, name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s*%s\n", h, section, name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", "", "Section the names belong to")
	return cmd
}
