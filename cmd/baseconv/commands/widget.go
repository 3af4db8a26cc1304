package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"baseconv/internal/domain"
)

// printView writes the widget state the way the page lays it out.
func printView(w io.Writer, v domain.WidgetView) {
	fmt.Fprintf(w, "From:    %s\n", v.From.Name())
	fmt.Fprintf(w, "To:      %s\n", v.To.Name())
	switch {
	case v.Value == "":
		fmt.Fprintf(w, "Value:   (%s)\n", v.Placeholder)
	case !v.Valid:
		fmt.Fprintf(w, "Value:   %s (invalid)\n", v.Value)
	default:
		fmt.Fprintf(w, "Value:   %s\n", v.Value)
	}
	if v.Preview != nil {
		fmt.Fprintf(w, "Decimal: %d\n", *v.Preview)
	} else if v.OutOfRange {
		fmt.Fprintln(w, "Decimal: (out of range)")
	}
	if v.Result != "" {
		fmt.Fprintf(w, "Result:  %s\n", v.Result)
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the saved value, bases and result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := appWire.Widget.View(cmd.Context())
			if err != nil {
				return err
			}
			printView(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

// set [value]: edit the saved value and/or bases.
func setCmd() *cobra.Command {
	var fromFlag, toFlag string
	cmd := &cobra.Command{
		Use:   "set [value]",
		Short: "Edit the saved value and bases",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := appWire.Widget

			v, err := svc.View(ctx)
			if err != nil {
				return err
			}
			if fromFlag != "" {
				b, err := domain.ParseBase(fromFlag)
				if err != nil {
					return err
				}
				if v, err = svc.SetFrom(ctx, b); err != nil {
					return err
				}
			}
			if toFlag != "" {
				b, err := domain.ParseBase(toFlag)
				if err != nil {
					return err
				}
				if v, err = svc.SetTo(ctx, b); err != nil {
					return err
				}
			}
			if len(args) == 1 {
				if v, err = svc.SetValue(ctx, args[0]); err != nil {
					return err
				}
			}
			printView(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fromFlag, "from", "f", "", "source base")
	cmd.Flags().StringVarP(&toFlag, "to", "t", "", "destination base")
	return cmd
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Convert the saved value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := appWire.Widget.Convert(cmd.Context())
			if err != nil {
				return err
			}
			if v.Value == "" {
				return fmt.Errorf("no value set. use: baseconv set <value>")
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Result)
			return nil
		},
	}
}

func swapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap",
		Short: "Swap bases and move the result into the value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := appWire.Widget.Swap(cmd.Context())
			if err != nil {
				return err
			}
			printView(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the saved result to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := appWire.Widget.Copy(cmd.Context())
			if err != nil {
				return err
			}
			appWire.Log.Debug("copied result", "result", text, "clipboard", cfg.Clipboard)
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied")
			return nil
		},
	}
}
