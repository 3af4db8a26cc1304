package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"baseconv/internal/domain"
)

// validate <value>: report whether every character is a digit of --base.
func validateCmd() *cobra.Command {
	var baseFlag string
	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check that a numeral only uses digits of a base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := cfg.DefaultFrom
			if baseFlag != "" {
				var err error
				if base, err = domain.ParseBase(baseFlag); err != nil {
					return err
				}
			}

			var v domain.Validation
			if appWire.Client != nil {
				var err error
				if v, err = appWire.Client.Validate(cmd.Context(), args[0], base); err != nil {
					return err
				}
			} else {
				v = appWire.Converter.Validate(args[0], base)
			}

			out := cmd.OutOrStdout()
			if v.Valid {
				fmt.Fprintf(out, "valid %s\n", base.Name())
				return nil
			}
			fmt.Fprintln(out, describeInvalid(v, base))
			return nil
		},
	}
	cmd.Flags().StringVarP(&baseFlag, "base", "b", "", "base to validate against (default $BASECONV_DEFAULT_FROM)")
	return cmd
}

// describeInvalid names the offending character. A remote server may report
// an offset outside Value, in which case only the offset is shown.
func describeInvalid(v domain.Validation, base domain.Base) string {
	if v.FirstInvalid < 0 || v.FirstInvalid >= len(v.Value) {
		return fmt.Sprintf("invalid %s: unexpected input at offset %d", base.Name(), v.FirstInvalid)
	}
	bad, _ := utf8.DecodeRuneInString(v.Value[v.FirstInvalid:])
	return fmt.Sprintf("invalid %s: unexpected %q at offset %d", base.Name(), bad, v.FirstInvalid)
}
