// Package cli implements the ecrlp command: RLP encoding, finite field arithmetic and elliptic curve scalar
// multiplication from the command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartcontractkit/ecrlp/internal/logger"
	"github.com/smartcontractkit/ecrlp/internal/metrics"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	green = "\x1b[32m"
	reset = "\x1b[0m"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	out      io.Writer
	color    bool
	log      *logger.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// NewRootCommand returns the ecrlp command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "ecrlp",
		Short:        "Finite fields, elliptic curves and RLP encoding.",
		Long:         "A toolbox for prime and extension field arithmetic, elliptic curve points and RLP encoding.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.out = cmd.OutOrStdout()
			a.color = isTerminal(a.out)
			a.log = logger.NewLogger(cmd.ErrOrStderr(), getFlag(cmd, "verbose"))
			a.registry = prometheus.NewRegistry()
			m, err := metrics.New(a.registry)
			if err != nil {
				return err
			}
			a.metrics = m
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !getFlag(cmd, "metrics") {
				return nil
			}
			snapshot, err := metrics.Snapshot(a.registry)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.ErrOrStderr(), metrics.Format(snapshot))
			return err
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().Bool("metrics", false, "print counters to stderr on exit")

	root.AddCommand(newRlpCommand(a), newFieldCommand(a), newCurveCommand(a))
	return root
}

// Execute runs the root command on the process arguments and returns the exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

// println writes a result line, in green on a terminal.
func (a *app) println(line string) error {
	if a.color {
		line = green + line + reset
	}
	_, err := fmt.Fprintln(a.out, line)
	return err
}

// rejected counts and logs an invalid input before handing the error back to cobra.
func (a *app) rejected(command string, err error) error {
	a.metrics.InvalidInputs.WithLabelValues(command).Inc()
	a.log.Debug("rejected input", logger.Fields{"command": command, "error": err})
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err)
	}
	return r
}
