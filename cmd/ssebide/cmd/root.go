// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssebide/ssebide-chain/cmd/ssebide/version"
	"github.com/ssebide/ssebide-chain/consts"
	"github.com/ssebide/ssebide-chain/runtime"
)

type flags struct {
	logLevel string
	logDir   string
	planPath string
	output   string
	verbose  bool
	metrics  bool
}

func NewRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:          consts.Name,
		Short:        "In-memory runtime state simulator",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.run(cmd)
		},
	}

	cobra.EnablePrefixMatching = true
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "log level")
	cmd.PersistentFlags().StringVar(&f.logDir, "log-dir", "", "directory to write rotated JSON logs to")
	cmd.Flags().StringVar(&f.planPath, "plan", "", "simulation plan file (YAML or JSON), - for stdin")
	cmd.Flags().StringVar(&f.output, "output", string(OutputText), "final state format (text, json)")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "print a JSON response for every step")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "print runtime metrics after the final state")

	cmd.AddCommand(
		version.NewCommand(),
	)
	return cmd
}

func (f *flags) run(cmd *cobra.Command) error {
	log, err := newLogger(f.logLevel, f.logDir, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Stop()

	plan, err := f.loadPlan(cmd.InOrStdin())
	if err != nil {
		return err
	}

	r := &runner{
		log:     log,
		rt:      runtime.New(runtime.WithLogger(log)),
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
		verbose: f.verbose,
		output:  Output(f.output),
		metrics: f.metrics,
	}
	return r.Run(plan)
}

func (f *flags) loadPlan(stdin io.Reader) (*Plan, error) {
	var (
		planBytes []byte
		err       error
	)
	switch f.planPath {
	case "":
		return DefaultPlan(), nil
	case "-":
		planBytes, err = io.ReadAll(stdin)
	default:
		planBytes, err = os.ReadFile(f.planPath)
	}
	if err != nil {
		return nil, err
	}
	return unmarshalPlan(planBytes)
}
