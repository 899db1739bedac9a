package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/java"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/pbnjay/memory"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &infoRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "info",
		Short: "Shows the java runtimes and system details mclaunch uses",
		Args:  cobra.NoArgs,
	}, runner)

	runner.flags = cmdLaunchFlags(cmd.Command)

	rootCmd.AddCommand(cmd.Command)
}

type infoRunner struct {
	flags *launchFlags
}

func (i *infoRunner) RunE(cmd *cobra.Command, args []string) error {
	logger.Headline("Java")
	candidates := java.NewSystem().Candidates()
	if len(candidates) == 0 {
		logger.Warn("No java runtime found")
	}
	for _, c := range candidates {
		fmt.Println("  " + c)
	}

	selected := i.flags.Java
	if selected == "" {
		selected = viper.GetString("java")
	}
	if selected == "" && len(candidates) != 0 {
		selected = candidates[0]
	}
	if selected != "" {
		fmt.Println("  selected: " + gchalk.Bold(selected))
	}

	logger.Headline("System")
	platform := minecraft.CurrentPlatform()
	fmt.Printf("  platform: %s %s (%s bit)\n", platform.OS, platform.Arch, platform.Bits())
	if h, err := host.Info(); err == nil {
		fmt.Printf("  os: %s %s (%s)\n", h.Platform, h.PlatformVersion, h.KernelArch)
	} else {
		logger.Debug("could not read host info: " + err.Error())
	}
	fmt.Printf("  memory: %s\n", humanize.IBytes(memory.TotalMemory()))
	fmt.Printf("  cpus: %d\n", runtime.NumCPU())

	logger.Headline("Minecraft")
	dir, err := i.flags.gameDir()
	if err != nil {
		return err
	}
	fmt.Println("  directory: " + dir)
	installed, err := minecraft.NewManager(filepath.Join(dir, "versions")).Installed()
	if err != nil {
		logger.Debug("could not list versions: " + err.Error())
	}
	fmt.Printf("  installed versions: %d\n", len(installed))

	return nil
}
