package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mpardalos/lilsat/solver"
)

// Conventional SAT-solver exit codes.
const (
	exitSat     = 10
	exitUnsat   = 20
	exitError   = 1
	exitTimeout = 2
)

type options struct {
	timeout time.Duration
	debug   bool
	stats   bool
	verify  bool
}

func newRootCmd(exitCode *int) *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:           "lilsat <file.cnf>",
		Short:         "Decides satisfiability of a propositional formula in DIMACS CNF format",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			code, err := o.run(args[0], logger)
			*exitCode = code
			return err
		},
	}

	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "give up solving after this duration, 0 meaning no limit")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.Flags().BoolVar(&o.stats, "stats", false, "report solving statistics")
	cmd.Flags().BoolVar(&o.verify, "verify", false, "on SAT, re-check the model against the input formula")

	return cmd
}

func (o options) run(path string, logger *logrus.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return exitError, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	formula, err := solver.ParseCNF(f)
	if err != nil {
		return exitError, errors.Wrapf(err, "could not parse %q", path)
	}
	logger.Debugf("parsed %d clauses over %d variables", formula.NumClauses(), formula.NumVars())

	ctx := context.Background()
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	s := solver.New(formula, solver.WithLogger(logger))
	answer, err := s.Solve(ctx)
	if o.stats {
		logger.WithFields(logrus.Fields{
			"decisions": s.Stats.NbDecisions,
			"conflicts": s.Stats.NbConflicts,
			"learned":   s.Stats.NbLearned,
			"implied":   s.Stats.NbImplied,
		}).Info("solving statistics")
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			fmt.Println(solver.Indet)
			return exitTimeout, nil
		}
		return exitTimeout, errors.Wrap(err, "solving failed")
	}

	fmt.Println(answer)
	if o.verify && answer.Status == solver.Sat {
		if !formula.Verify(answer.Model) {
			return exitError, errors.New("model does not satisfy the formula")
		}
		logger.Info("model verified against the input formula")
	}
	return lo.Ternary(answer.Status == solver.Sat, exitSat, exitUnsat), nil
}

func main() {
	var exitCode int
	if err := newRootCmd(&exitCode).Execute(); err != nil {
		logrus.Error(err)
		if exitCode == 0 {
			exitCode = exitError
		}
	}
	os.Exit(exitCode)
}
