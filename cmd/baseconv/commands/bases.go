package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"baseconv/internal/domain"
)

func basesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bases",
		Short: "List the supported bases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var bases []domain.BaseDescriptor
			if appWire.Client != nil {
				var err error
				if bases, err = appWire.Client.Bases(cmd.Context()); err != nil {
					return err
				}
			} else {
				bases = appWire.Converter.Bases()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tRADIX\tNAME")
			for _, b := range bases {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", b.ID, b.Radix, b.Name)
			}
			return tw.Flush()
		},
	}
}
