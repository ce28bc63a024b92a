// Command bigcalc evaluates postfix expressions with arbitrary-precision decimals.
//
//	bigcalc 1 3 /                       # fails: non-terminating expansion
//	bigcalc --precision 10 1 3 /        # 0.3333333333
//	bigcalc --rounding floor -p 2 2 3 / # 0.66
//	bigcalc --notation plain 1E+3       # 1000
//	bigcalc -- -1 2 +                   # 1
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/govalues/bigdecimal"
	"github.com/govalues/bigdecimal/internal/calc"
)

// roundingValue is a pflag.Value that parses rounding mode names.
type roundingValue struct {
	mode *bigdecimal.RoundingMode
}

var _ pflag.Value = (*roundingValue)(nil)

func (v *roundingValue) String() string {
	if v.mode == nil {
		return ""
	}
	return v.mode.String()
}

func (v *roundingValue) Set(s string) error {
	m, err := bigdecimal.ParseRoundingMode(s)
	if err != nil {
		return err
	}
	*v.mode = m
	return nil
}

func (v *roundingValue) Type() string {
	return "mode"
}

var notations = map[string]func(*bigdecimal.Decimal) string{
	"sci":   (*bigdecimal.Decimal).String,
	"eng":   (*bigdecimal.Decimal).EngineeringString,
	"plain": (*bigdecimal.Decimal).PlainString,
}

type options struct {
	precision uint32
	rounding  bigdecimal.RoundingMode
	notation  string
}

func newRootCommand() *cobra.Command {
	opts := options{rounding: bigdecimal.RoundHalfEven, notation: "sci"}
	cmd := &cobra.Command{
		Use:   "bigcalc [flags] TOKEN...",
		Short: "Evaluate a postfix expression with arbitrary-precision decimals",
		Long: `Evaluate a postfix (reverse Polish) expression.

Operators: + - * / % ^ sqrt neg abs.
With the default precision of 0 every operation is exact.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	flags := cmd.Flags()
	// Flags end at the first operand, so later negative operands are not parsed as flags.
	flags.SetInterspersed(false)
	flags.Uint32VarP(&opts.precision, "precision", "p", opts.precision, "maximum significant digits, 0 for exact arithmetic")
	flags.VarP(&roundingValue{mode: &opts.rounding}, "rounding", "r", "rounding mode: up, down, ceiling, floor, half_up, half_down, half_even, unnecessary")
	flags.StringVarP(&opts.notation, "notation", "n", opts.notation, "output notation: sci, eng or plain")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	format, ok := notations[opts.notation]
	if !ok {
		return errors.Errorf("unknown notation %q", opts.notation)
	}
	ctx := bigdecimal.NewContext(opts.precision, opts.rounding)
	d, err := calc.Evaluate(strings.Join(args, " "), ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), format(d))
	return err
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
