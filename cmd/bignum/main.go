package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oisee/bignum/pkg/fbig"
	"github.com/oisee/bignum/pkg/ibig"
	"github.com/oisee/bignum/pkg/radix"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bignum",
		Short: "Arbitrary-precision arithmetic — add, multiply, divide, gcd, sqrt, ln",
	}

	var grouped bool
	addOutputFlag := func(cmd *cobra.Command) {
		cmd.Flags().BoolVar(&grouped, "grouped", false, "Group the decimal result with thousands separators")
	}
	printResult := func(x ibig.IBig) {
		if grouped && !x.Negative() {
			fmt.Println(radix.FormatGrouped(x.Abs()))
			return
		}
		sign := ""
		if x.Negative() {
			sign = "-"
		}
		fmt.Printf("%s%s\n", sign, radix.Format(x.Abs(), 10))
	}

	addCmd := &cobra.Command{
		Use:   "add [a] [b]",
		Short: "Compute a + b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			printResult(a.Add(b))
			return nil
		},
	}
	addOutputFlag(addCmd)

	subCmd := &cobra.Command{
		Use:   "sub [a] [b]",
		Short: "Compute a - b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			printResult(a.Sub(b))
			return nil
		},
	}
	addOutputFlag(subCmd)

	mulCmd := &cobra.Command{
		Use:   "mul [a] [b]",
		Short: "Compute a * b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			printResult(a.Mul(b))
			return nil
		},
	}
	addOutputFlag(mulCmd)

	divCmd := &cobra.Command{
		Use:   "div [a] [b]",
		Short: "Compute truncating quotient and remainder of a / b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			q, r := a.DivRem(b)
			fmt.Printf("quotient:  %s\n", signed(q))
			fmt.Printf("remainder: %s\n", signed(r))
			return nil
		},
	}

	gcdCmd := &cobra.Command{
		Use:   "gcd [a] [b]",
		Short: "Compute gcd(a, b)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			fmt.Println(radix.Format(a.Gcd(b), 10))
			return nil
		},
	}

	sqrtCmd := &cobra.Command{
		Use:   "sqrt [n]",
		Short: "Compute floor(sqrt(n)) and the remainder n - floor(sqrt(n))^2",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseOne(args[0])
			if err != nil {
				return err
			}
			if n.Negative() {
				return fmt.Errorf("sqrt: operand must be nonnegative")
			}
			root, rem := n.Abs().SqrtRem()
			fmt.Printf("root:      %s\n", radix.Format(root, 10))
			fmt.Printf("remainder: %s\n", radix.Format(rem, 10))
			return nil
		},
	}

	var lnPrecision uint
	lnCmd := &cobra.Command{
		Use:   "ln [n]",
		Short: "Compute the natural logarithm of n to a fixed decimal precision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseOne(args[0])
			if err != nil {
				return err
			}
			if n.Negative() || n.IsZero() {
				return fmt.Errorf("ln: operand must be positive")
			}
			ctx := fbig.NewContext[fbig.RoundHalfEven](lnPrecision, 10)
			result := ctx.Ln(ctx.FromInt(n))
			fmt.Printf("%s * 10^%d\n", radix.Format(result.Significand.Abs(), 10), result.Exponent)
			return nil
		},
	}
	lnCmd.Flags().UintVar(&lnPrecision, "precision", 40, "Number of significant decimal digits")

	var fdivPrecision uint
	fdivCmd := &cobra.Command{
		Use:   "fdiv [a] [b]",
		Short: "Compute a/b as a rounded decimal to a fixed precision",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			ctx := fbig.NewContext[fbig.RoundHalfEven](fdivPrecision, 10)
			result := ctx.FromRatio(a, b)
			fmt.Printf("%s * 10^%d\n", signed(result.Significand), result.Exponent)
			return nil
		},
	}
	fdivCmd.Flags().UintVar(&fdivPrecision, "precision", 20, "Number of significant decimal digits")

	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divCmd, gcdCmd, sqrtCmd, lnCmd, fdivCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseOne parses a decimal integer, with an optional leading '-'.
func parseOne(s string) (ibig.IBig, error) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	u, err := radix.Parse(s, 10)
	if err != nil {
		return ibig.IBig{}, err
	}
	return ibig.FromWords(neg, u.Words()), nil
}

func parseTwo(args []string) (a, b ibig.IBig, err error) {
	a, err = parseOne(args[0])
	if err != nil {
		return
	}
	b, err = parseOne(args[1])
	return
}

func signed(x ibig.IBig) string {
	if x.Negative() {
		return "-" + radix.Format(x.Abs(), 10)
	}
	return radix.Format(x.Abs(), 10)
}
