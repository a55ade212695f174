package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/cli"
	"github.com/orizon-lang/j2o/internal/driver"
)

func (a *app) translateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate [file or directory...]",
		Short: "Translate files and render the resulting trees to the output directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args, true)
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file or directory...]",
		Short: "Translate files without writing output and report failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args, false)
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	var outline bool
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the translated tree of one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.newDriver(false)
			if err != nil {
				return err
			}
			r := d.TranslateFile(cmd.Context(), args[0])
			if r.Err != nil {
				return r.Err
			}
			if outline {
				fmt.Fprint(a.stdout, ast.Outline(r.Unit))
				return nil
			}
			fmt.Fprintln(a.stdout, ast.DebugString(r.Unit))
			return nil
		},
	}
	cmd.Flags().BoolVar(&outline, "outline", false, "print the node kind outline instead of source")
	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [directory...]",
		Short: "Translate .java files whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, err := a.newDriver(true)
			if err != nil {
				return err
			}
			w, err := d.Watch(args...)
			if err != nil {
				return err
			}
			defer w.Close()

			a.logger.Info("watching", "dirs", args, "run_id", d.RunID())
			err = w.Run(ctx, func(r *driver.Result) { a.report(r) })
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// version works without a configuration file
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.PrintVersion(a.stdout, "j2o", jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}
