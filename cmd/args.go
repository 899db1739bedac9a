package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func init() {
	runner := &argsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "args <version>",
		Short: "Prints the java command line of a version without launching it",
		Args:  cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().BoolVar(&runner.vars, "vars", false, "Print the template variables instead")
	runner.flags = cmdLaunchFlags(cmd.Command)

	rootCmd.AddCommand(cmd.Command)
}

type argsRunner struct {
	vars  bool
	flags *launchFlags
}

func (a *argsRunner) RunE(cmd *cobra.Command, args []string) error {
	mc, err := a.flags.newLauncher(args[0])
	if err != nil {
		return err
	}

	if a.vars {
		vars, err := mc.ResolveVariables()
		if err != nil {
			return launchError(err)
		}
		printVariables(os.Stdout, vars)
		return nil
	}

	plan, err := mc.Resolve()
	if err != nil {
		return launchError(err)
	}

	fmt.Println(plan.Program())
	for _, arg := range plan.Args() {
		fmt.Println("  " + arg)
	}
	return nil
}

// printVariables prints vars sorted by name
func printVariables(w io.Writer, vars map[string]string) {
	names := maps.Keys(vars)
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s=%s\n", name, vars[name])
	}
}
