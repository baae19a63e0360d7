package cli

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/smartcontractkit/ecrlp/field"
	"github.com/smartcontractkit/ecrlp/internal/logger"
	"github.com/smartcontractkit/ecrlp/internal/testimplementations/unsaferand"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("invalid arguments")

// fieldConfig selects GF(p) or GF(p^n) from the command line.
type fieldConfig struct {
	modulus   string
	generator string
	degree    int
	seed      string
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("modulus", "7", "prime modulus p of the base field")
	cmd.Flags().String("generator", "", "coefficients of the monic irreducible generator of GF(p^n), low degree first, e.g. 2,0,1")
	cmd.Flags().Int("degree", 1, "degree n of a randomly generated extension field, if no generator is given")
	cmd.Flags().String("seed", "", "seed for a deterministic, non-cryptographic random stream, for reproducible fields")
}

func readFieldConfig(cmd *cobra.Command) fieldConfig {
	return fieldConfig{
		modulus:   getString(cmd, "modulus"),
		generator: getString(cmd, "generator"),
		degree:    getInt(cmd, "degree"),
		seed:      getString(cmd, "seed"),
	}
}

// build returns the prime field, and the extension field on top of it if the configuration asks for one.
func (cfg fieldConfig) build(a *app) (*field.PrimeField, *field.ExtensionField, error) {
	p, ok := new(big.Int).SetString(cfg.modulus, 0)
	if !ok {
		return nil, nil, fmt.Errorf("%w: modulus %q is not an integer", errUsage, cfg.modulus)
	}
	base, err := field.NewPrimeField(p)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case cfg.generator != "":
		if cfg.degree > 1 {
			return nil, nil, fmt.Errorf("%w: --generator and --degree are exclusive", errUsage)
		}
		g, err := parseCoefficients(base, cfg.generator)
		if err != nil {
			return nil, nil, err
		}
		ext, err := field.NewExtensionField(base, g)
		if err != nil {
			return nil, nil, err
		}
		irreducible, err := field.IsIrreducible(base, g)
		if err != nil {
			return nil, nil, err
		}
		if !irreducible {
			a.log.Warn("generator is reducible, some elements have no inverse", logger.Fields{"generator": cfg.generator})
		}
		return base, ext, nil

	case cfg.degree > 1:
		var source io.Reader = rand.Reader
		if cfg.seed != "" {
			source = unsaferand.New(cfg.seed)
		}
		ext, err := field.RandomExtensionField(base, cfg.degree, source)
		if err != nil {
			return nil, nil, err
		}
		a.log.Info("generated extension field", logger.Fields{
			"field":     ext.String(),
			"generator": formatCoefficients(ext.Generator()),
		})
		return base, ext, nil

	case cfg.degree < 1:
		return nil, nil, fmt.Errorf("%w: degree %d must be positive", errUsage, cfg.degree)
	}
	return base, nil, nil
}

func parseCoefficients(base *field.PrimeField, s string) ([]*field.PrimeElement, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]*field.PrimeElement, len(parts))
	for i, part := range parts {
		v, ok := new(big.Int).SetString(strings.TrimSpace(part), 0)
		if !ok {
			return nil, fmt.Errorf("%w: coefficient %q is not an integer", errUsage, part)
		}
		coeffs[i] = base.FromBigInt(v)
	}
	return coeffs, nil
}

func formatCoefficients(coeffs []*field.PrimeElement) string {
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = c.BigInt().String()
	}
	return strings.Join(parts, ",")
}

func primeParser(f *field.PrimeField) func(string) (*field.PrimeElement, error) {
	return func(s string) (*field.PrimeElement, error) {
		v, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an element of %v", errUsage, s, f)
		}
		return f.FromBigInt(v), nil
	}
}

func extensionParser(f *field.ExtensionField) func(string) (*field.ExtensionElement, error) {
	return func(s string) (*field.ExtensionElement, error) {
		coeffs, err := parseCoefficients(f.Base(), s)
		if err != nil {
			return nil, err
		}
		return f.FromCoefficients(coeffs)
	}
}

var (
	binaryOps = map[string]bool{"add": true, "sub": true, "mul": true, "div": true}
	unaryOps  = map[string]bool{"neg": true, "inv": true}
)

func newFieldCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field [flags] op x [y]",
		Short: "Evaluate an operation in GF(p) or GF(p^n).",
		Long: `Evaluate add, sub, mul or div on two elements, or neg or inv on one.
	Elements of GF(p) are integers, elements of GF(p^n) comma separated
	coefficient lists, low degree first: 2,1 is 2 + t.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, ext, err := readFieldConfig(cmd).build(a)
			if err != nil {
				return a.rejected("field", err)
			}
			var result string
			if ext != nil {
				result, err = evaluate(a, extensionParser(ext), args)
			} else {
				result, err = evaluate(a, primeParser(base), args)
			}
			if err != nil {
				return a.rejected("field", err)
			}
			return a.println(result)
		},
	}
	addFieldFlags(cmd)
	return cmd
}

func evaluate[E field.Element[E]](a *app, parse func(string) (E, error), args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: expected an operation and its operands", errUsage)
	}
	op := args[0]
	switch {
	case binaryOps[op] && len(args) == 3:
	case unaryOps[op] && len(args) == 2:
	default:
		return "", fmt.Errorf("%w: cannot apply %q to %d operands", errUsage, op, len(args)-1)
	}

	operands := make([]E, len(args)-1)
	for i, arg := range args[1:] {
		x, err := parse(arg)
		if err != nil {
			return "", err
		}
		operands[i] = x
	}
	a.metrics.FieldOps.WithLabelValues(op).Inc()
	a.log.Debug("evaluating", logger.Fields{"op": op, "operands": args[1:]})

	x := operands[0]
	var result E
	switch op {
	case "add":
		result = x.Add(operands[1])
	case "sub":
		result = x.Sub(operands[1])
	case "mul":
		result = x.Mul(operands[1])
	case "div":
		inv, err := operands[1].Inverse()
		if err != nil {
			return "", err
		}
		result = x.Mul(inv)
	case "neg":
		result = x.Neg()
	case "inv":
		inv, err := x.Inverse()
		if err != nil {
			return "", err
		}
		result = inv
	}
	return result.String(), nil
}
