package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sam2402/logicCW/internal/config"
	"github.com/sam2402/logicCW/internal/driver"
)

// RootCommand returns the top-level "tableau" command: a decision
// procedure for the satisfiability of propositional and restricted
// first-order formulas via the analytic semantic tableau method.
func RootCommand() *cli.Command {
	root := &rootConfig{}
	return cli.NewCommandAt(&root.Main, "tableau").
		WithSynopsis("tableau command [opts]").
		WithDescription("tableau classifies and decides satisfiability of formulas read from an input file.").
		WithSubs(RunCommand())
}

type rootConfig struct {
	Main *cli.Command
}

// runConfig layers config.Config (the ambient defaults / on-disk file
// layer) under the "run" subcommand's own flags, the same MainConfig +
// *cli.Command embedding the teacher's per-command configs use
// (go-tony/cmd/o/configs.go).
type runConfig struct {
	config.Config
	Main *cli.Command
}

// RunCommand returns "tableau run", the only subcommand: it implements
// the driver's external interface (spec.md §6) end to end.
func RunCommand() *cli.Command {
	cfg := &runConfig{Config: config.Default()}
	if loaded, err := config.LoadFile(cfg.Config, config.FileName); err == nil {
		cfg.Config = loaded
	}

	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "run").
		WithSynopsis("tableau run [-input FILE] [-max-constants N] [-color] [-trace] [-verify-model]").
		WithDescription("run reads the driver input file and prints classification and satisfiability sentences for each formula line.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("%w: run takes no positional arguments", cli.ErrUsage)
			}
			return driver.Run(cfg.Config, cc.Out)
		})
}
