package cmd

import (
	"fmt"

	"github.com/renato0307/maestro/internal/paths"
)

// MacroCmd runs tengo macros from $MAESTRO_HOME/macros
type MacroCmd struct {
	List MacroListCmd `cmd:"list" help:"List the available macros" default:"1"`
	Run  MacroRunCmd  `cmd:"run" help:"Run a macro"`
}

// MacroListCmd lists macros
type MacroListCmd struct{}

// Run executes the list command
func (l *MacroListCmd) Run(cli *CLI) error {
	names, err := cli.Container.Macros.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(cli.Out(), "No macros in %s\n", paths.GetMacrosDir())
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(cli.Out(), name)
	}
	return nil
}

// MacroRunCmd runs one macro
type MacroRunCmd struct {
	Name string   `arg:"" help:"Macro name"`
	Args []string `arg:"" optional:"" help:"Arguments passed to the macro as args"`
}

// Run executes the run command
func (r *MacroRunCmd) Run(cli *CLI) error {
	result, err := cli.Container.Macros.Run(cli.Context(), r.Name, r.Args)
	if err != nil {
		return err
	}
	if result != nil {
		fmt.Fprintln(cli.Out(), result)
	}
	return waitForSilence(cli)
}
