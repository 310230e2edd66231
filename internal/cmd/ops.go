package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/govalues/evmmath"
)

// evalFunc computes a result from the parsed operands and the trailing
// integer arguments of a command.
type evalFunc func(s evmmath.Scale, x []*big.Int, n []int) (*big.Int, error)

// newEvalCmd builds a command taking operands decimal arguments followed by
// counts integer arguments.
func newEvalCmd(v *viper.Viper, use, short string, operands, counts int, eval evalFunc) *cobra.Command {
	return &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         cobra.ExactArgs(operands + counts),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConfig(v)
			if err != nil {
				return err
			}
			s, err := c.Scale()
			if err != nil {
				return err
			}

			x, err := c.parseOperands(s, args[:operands])
			if err != nil {
				return err
			}
			n := make([]int, counts)
			for i, arg := range args[operands:] {
				if n[i], err = strconv.Atoi(arg); err != nil {
					return errors.Wrapf(err, "invalid count %q", arg)
				}
			}

			log.WithFields(log.Fields{
				"op":       cmd.Name(),
				"unit":     s.Prec(),
				"rounding": s.Mode(),
			}).Debugf("evaluating %v", args)

			z, err := eval(s, x, n)
			if err != nil {
				return errors.Wrapf(err, "%s failed", cmd.Name())
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.format(s, z))
			return err
		},
	}
}

func newMulCmd(v *viper.Viper) *cobra.Command {
	return newEvalCmd(v, "mul x y", "multiply two numbers", 2, 0,
		func(s evmmath.Scale, x []*big.Int, _ []int) (*big.Int, error) {
			return evmmath.MulDiv(x[0], x[1], s.One(), s.Mode())
		})
}

func newDivCmd(v *viper.Viper) *cobra.Command {
	return newEvalCmd(v, "div x y", "divide x by y", 2, 0,
		func(s evmmath.Scale, x []*big.Int, _ []int) (*big.Int, error) {
			return s.Div(x[0], x[1])
		})
}

func newAvgCmd(v *viper.Viper) *cobra.Command {
	return newEvalCmd(v, "avg x y weight", "weighted average of x and y, where weight is the share of y", 3, 0,
		func(s evmmath.Scale, x []*big.Int, _ []int) (*big.Int, error) {
			return s.Avg(x[0], x[1], x[2]), nil
		})
}

func newPowCmd(v *viper.Viper) *cobra.Command {
	return newEvalCmd(v, "pow x n", "raise x to the integer power n", 1, 1,
		func(s evmmath.Scale, x []*big.Int, n []int) (*big.Int, error) {
			return s.Pow(x[0], n[0])
		})
}

func newSqrtCmd(v *viper.Viper) *cobra.Command {
	return newEvalCmd(v, "sqrt x", "square root of x", 1, 0,
		func(s evmmath.Scale, x []*big.Int, _ []int) (*big.Int, error) {
			return s.Sqrt(x[0])
		})
}

func newExpCmd(v *viper.Viper) *cobra.Command {
	return newEvalCmd(v, "exp x n", "approximate e^x with a Taylor polynomial of degree n", 1, 1,
		func(s evmmath.Scale, x []*big.Int, n []int) (*big.Int, error) {
			return s.ExpTaylorN(x[0], n[0])
		})
}
