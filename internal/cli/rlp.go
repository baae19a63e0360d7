package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/smartcontractkit/ecrlp/internal/logger"
	"github.com/smartcontractkit/ecrlp/rlp"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"
)

const jsonPrefix = "json"

func newRlpCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rlp [flags] [value...]",
		Short: "RLP encode a string or a list.",
		Long: `Encode the arguments with the recursive length prefix format.
	A single argument is a string, unless it starts with "json", in which case the
	remainder is parsed as a JSON document of strings and arrays. Any other number
	of arguments, including none, is a list of strings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := parseRlpArgs(args)
			if err != nil {
				return a.rejected("rlp", err)
			}
			encoded, err := rlp.Encode(item)
			if err != nil {
				return a.rejected("rlp", err)
			}
			a.metrics.Encodings.Inc()
			a.metrics.EncodedBytes.Add(float64(len(encoded)))
			a.log.Debug("encoded item", logger.Fields{"size": len(encoded)})

			if err := a.println(describe(item) + " = " + rlp.Format(encoded)); err != nil {
				return err
			}
			if getFlag(cmd, "hex") {
				if err := a.println(hexutil.Encode(encoded)); err != nil {
					return err
				}
			}
			if getFlag(cmd, "keccak") {
				h := sha3.NewLegacyKeccak256()
				h.Write(encoded)
				if err := a.println("keccak256 " + hexutil.Encode(h.Sum(nil))); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("hex", false, "also print the encoding as a hex string")
	cmd.Flags().Bool("keccak", false, "also print the Keccak-256 hash of the encoding")
	return cmd
}

func parseRlpArgs(args []string) (rlp.Item, error) {
	if len(args) != 1 {
		return rlp.Strings(args...), nil
	}
	if rest, ok := strings.CutPrefix(args[0], jsonPrefix); ok {
		item, err := rlp.ParseJSON([]byte(rest))
		if err != nil {
			return nil, fmt.Errorf("could not parse %q: %w", args[0], err)
		}
		return item, nil
	}
	return rlp.String(args[0]), nil
}

// describe renders item for humans, e.g. `The list ["cat", "dog"]` or `The empty string ""`.
func describe(item rlp.Item) string {
	var kind string
	var empty bool
	switch v := item.(type) {
	case rlp.String:
		kind, empty = "string", len(v) == 0
	case rlp.List:
		kind, empty = "list", len(v) == 0
	}
	if empty {
		kind = "empty " + kind
	}
	return "The " + kind + " " + render(item)
}

func render(item rlp.Item) string {
	switch v := item.(type) {
	case rlp.String:
		return strconv.Quote(string(v))
	case rlp.List:
		parts := make([]string, len(v))
		for i, child := range v {
			parts[i] = render(child)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("%v", item)
}
