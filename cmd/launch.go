package cmd

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &launchRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "launch <version>",
		Short:   "Launches an installed Minecraft version",
		Long:    "Extracts the native libraries of the version and starts the game in the background",
		Aliases: []string{"run", "start", "play"},
		Args:    cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().BoolVarP(&runner.wait, "wait", "w", false, "Wait until the game exits")
	runner.flags = cmdLaunchFlags(cmd.Command)

	rootCmd.AddCommand(cmd.Command)
}

type launchRunner struct {
	wait  bool
	flags *launchFlags
}

func (l *launchRunner) RunE(cmd *cobra.Command, args []string) error {
	mc, err := l.flags.newLauncher(args[0])
	if err != nil {
		return err
	}

	plan, err := mc.Resolve()
	if err != nil {
		return launchError(err)
	}

	fmt.Println(launchIntro(mc, plan))
	logger.Debug("Java: " + plan.Program())
	logger.Debug("Main class: " + plan.MainClass())
	logger.Debug("Assets: " + mc.AssetsDir())
	logger.Debug("Libraries: " + mc.LibrariesDir())

	spinner := commands.NewMaybeSpinner(commands.IsTerminal() && !viper.GetBool("noninteractive"))
	spinner.Update("Extracting natives to " + plan.NativesDir())
	spinner.Start()
	game, err := plan.Start()
	spinner.Stop()
	if err != nil {
		return launchError(err)
	}

	fmt.Println(startedText(game))

	if !l.wait {
		return game.Process.Release()
	}

	if err := game.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &commands.CliError{
				Text: "Minecraft exited with code " + strconv.Itoa(exitErr.ExitCode()),
				Help: "Run again with --verbose to see the full java command line",
			}
		}
		return err
	}
	logger.Info("Minecraft exited")
	return nil
}

func launchIntro(mc *launcher.Launcher, plan *launcher.LaunchArguments) string {
	title := commands.StyleTitle.Render("Launching " + mc.VersionID())
	details := commands.StylePipe.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			"Directory: "+gchalk.Bold(plan.Dir()),
			"Java: "+gchalk.Bold(plan.Program()),
			fmt.Sprintf("Arguments: %d jvm, %d game", len(plan.JVMOptions()), len(plan.GameOptions())),
		),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, details)
}

// startedText describes the started game process
func startedText(game *exec.Cmd) string {
	pid := game.Process.Pid
	name := "java"
	if p, err := process.NewProcess(int32(pid)); err == nil {
		if n, err := p.Name(); err == nil {
			name = n
		}
	}
	return commands.StyleGrass.Render(fmt.Sprintf("Started %s (pid %d)", name, pid))
}
