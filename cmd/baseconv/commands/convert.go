package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"baseconv/internal/domain"
	"baseconv/internal/radix"
	"baseconv/internal/services/widget"
)

// convert <value>: convert a numeral without touching the saved state.
func convertCmd() *cobra.Command {
	var fromFlag, toFlag string
	var sentinel bool
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a numeral between bases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := resolveBases(fromFlag, toFlag)
			if err != nil {
				return err
			}

			var conv domain.Conversion
			if appWire.Client != nil {
				conv, err = appWire.Client.Convert(cmd.Context(), args[0], from, to)
			} else {
				conv, err = appWire.Converter.Convert(args[0], from, to)
			}
			if errors.Is(err, radix.ErrInvalidNumber) && sentinel {
				appWire.Log.Debug("conversion failed", "value", args[0], "error", err)
				conv.Result = widget.ErrorResult
				err = nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), conv.Result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fromFlag, "from", "f", "", "source base (default $BASECONV_DEFAULT_FROM)")
	cmd.Flags().StringVarP(&toFlag, "to", "t", "", "destination base (default $BASECONV_DEFAULT_TO)")
	cmd.Flags().BoolVar(&sentinel, "sentinel", false, `print "Error" instead of failing on an invalid number`)
	return cmd
}

// resolveBases parses the --from/--to flags, falling back to configured defaults.
func resolveBases(fromFlag, toFlag string) (from, to domain.Base, err error) {
	from, to = cfg.DefaultFrom, cfg.DefaultTo
	if fromFlag != "" {
		if from, err = domain.ParseBase(fromFlag); err != nil {
			return "", "", err
		}
	}
	if toFlag != "" {
		if to, err = domain.ParseBase(toFlag); err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}
