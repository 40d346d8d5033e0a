package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	qmcversion "github.com/pborges/qmc"
	"github.com/pborges/qmc/internal/input"
	"github.com/pborges/qmc/internal/qmc"
	"github.com/pborges/qmc/internal/report"
	"github.com/pborges/qmc/internal/verify"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

type options struct {
	debug  bool
	quiet  bool
	output string
	verify bool
}

func (o *options) bindFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.debug, "debug", false, "log every simplification pass to stderr")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "print only the simplified expression")
	fs.StringVarP(&o.output, "output", "o", outputText, "output format: text or yaml")
	fs.BoolVar(&o.verify, "verify", false, "check the expression against the minterms with a SAT solver")
}

// usageError marks failures caused by how the command was invoked.
type usageError struct{ error }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case input.IsValidation(err):
		fmt.Fprintln(stdout, "ERROR: "+errors.Cause(err).Error())
		return exitFailure
	}
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(stderr, "error:", uerr.error)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	fmt.Fprintln(stderr, "error:", err)
	return exitFailure
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:   "qmc [minterm...]",
		Short: "Simplify a boolean function given by its minterms",
		Long: `qmc reduces a list of minterms to a sum-of-products expression.

Implicants are merged pass by pass in the manner of Quine-McCluskey, then a
cover is chosen greedily: the first implicant that still covers something is
taken until every minterm is covered. The result is not guaranteed to be the
smallest possible expression.

Minterms are read from the arguments, or from the first line of standard
input when there are none. Use "--" before the list if it may start with "-".

    $ echo 1 3 | qmc
    $ qmc -q -- 0 1 2 5
`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			logger.SetOutput(stderr)
			logger.SetLevel(logrus.WarnLevel)
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			return o.run(logger, args, stdin, stdout)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	o.bindFlags(cmd.Flags())

	cmd.AddCommand(newVersionCmd(stdout))
	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the qmc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(stdout, qmcversion.Version())
		},
	}
}

func (o *options) run(logger *logrus.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	if o.output != outputText && o.output != outputYAML {
		return usageError{errors.Errorf("unknown output format %q", o.output)}
	}

	var minterms []int
	var err error
	if len(args) > 0 {
		minterms, err = input.ParseFields(args)
	} else {
		var line string
		if line, err = input.ReadLine(stdin); err != nil {
			return err
		}
		minterms, err = input.Parse(line)
	}
	if err != nil {
		return errors.Wrap(err, "minterms")
	}
	logger.WithField("minterms", len(minterms)).Debug("input accepted")

	res := qmc.Simplify(minterms, logger)

	var verified *bool
	if o.verify {
		if err := verify.Equivalent(res.Minterms, patterns(res.Selected), res.Width()); err != nil {
			return errors.Wrap(err, "verify")
		}
		ok := true
		verified = &ok
		logger.Debug("expression verified")
	}

	switch o.output {
	case outputYAML:
		doc := report.NewDocument(res)
		doc.Verified = verified
		out, err := report.MakeYAML(doc)
		if err != nil {
			return errors.Wrap(err, "yaml")
		}
		_, err = stdout.Write(out)
		return err
	default:
		cfg := report.Config{Matrices: !o.quiet}
		if !o.quiet {
			cfg.Header = headerLines()
		}
		_, err := io.WriteString(stdout, report.MakeText(cfg, res))
		return err
	}
}

const banner = "Boolean Simplification Program"

func headerLines() []string {
	return []string{
		fmt.Sprintf("qmc %s", qmcversion.Version()),
		banner,
		strings.Repeat("=", len(banner)),
	}
}

func patterns(imps []*qmc.Implicant) []string {
	out := make([]string, len(imps))
	for i, imp := range imps {
		out[i] = imp.Pattern
	}
	return out
}
