package cli

import (
	"fmt"
	"math/big"

	"github.com/smartcontractkit/ecrlp/curve"
	"github.com/smartcontractkit/ecrlp/field"
	"github.com/smartcontractkit/ecrlp/internal/logger"
	"github.com/spf13/cobra"
)

type curveConfig struct {
	a, b string
	x, y string
}

func newCurveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve [flags] [k...]",
		Short: "Multiply a point of y^2 = x^3 + ax + b by scalars.",
		Long: `Check that (x, y) lies on y^2 = x^3 + ax + b over GF(p) or GF(p^n) and
	print k*P for every scalar argument. Scalars may be negative.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, ext, err := readFieldConfig(cmd).build(a)
			if err != nil {
				return a.rejected("curve", err)
			}
			cfg := curveConfig{
				a: getString(cmd, "a"),
				b: getString(cmd, "b"),
				x: getString(cmd, "x"),
				y: getString(cmd, "y"),
			}
			if ext != nil {
				err = multiply(a, extensionParser(ext), cfg, args)
			} else {
				err = multiply(a, primeParser(base), cfg, args)
			}
			if err != nil {
				return a.rejected("curve", err)
			}
			return nil
		},
	}
	addFieldFlags(cmd)
	cmd.Flags().String("a", "1", "coefficient a of the curve")
	cmd.Flags().String("b", "1", "coefficient b of the curve")
	cmd.Flags().String("x", "", "x coordinate of the point")
	cmd.Flags().String("y", "", "y coordinate of the point")
	cmd.MarkFlagsRequiredTogether("x", "y")
	return cmd
}

func multiply[E field.Element[E]](a *app, parse func(string) (E, error), cfg curveConfig, scalars []string) error {
	values := make([]E, 4)
	for i, s := range []string{cfg.a, cfg.b, cfg.x, cfg.y} {
		v, err := parse(s)
		if err != nil {
			return err
		}
		values[i] = v
	}

	c, err := curve.New(values[0], values[1])
	if err != nil {
		return err
	}
	p, err := c.NewPoint(values[2], values[3])
	if err != nil {
		return err
	}
	if err := a.println(fmt.Sprintf("P = %v on %v", p, c)); err != nil {
		return err
	}

	for _, s := range scalars {
		k, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return fmt.Errorf("%w: scalar %q is not an integer", errUsage, s)
		}
		q, err := p.ScalarMult(k)
		if err != nil {
			return err
		}
		a.metrics.ScalarMults.Inc()
		a.log.Debug("multiplied point", logger.Fields{"k": k})
		if err := a.println(fmt.Sprintf("%v*P = %v", k, q)); err != nil {
			return err
		}
	}
	return nil
}
