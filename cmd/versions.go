package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/spf13/cobra"
)

func init() {
	runner := &versionsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "versions",
		Short:   "Lists the installed Minecraft versions",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
	}, runner)

	runner.flags = cmdLaunchFlags(cmd.Command)

	rootCmd.AddCommand(cmd.Command)
}

type versionsRunner struct {
	flags *launchFlags
}

func (v *versionsRunner) RunE(cmd *cobra.Command, args []string) error {
	dir, err := v.flags.gameDir()
	if err != nil {
		return err
	}
	installed, err := minecraft.NewManager(filepath.Join(dir, "versions")).Installed()
	if err != nil {
		return err
	}

	if len(installed) == 0 {
		logger.Info("No versions installed in " + dir)
		return nil
	}

	for _, id := range sortVersions(installed) {
		fmt.Println(id)
	}
	return nil
}

// sortVersions sorts release versions newest first.
// Everything that is not semver (snapshots, modded versions) follows alphabetically
func sortVersions(ids []string) []string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)

	parsed := make(map[string]*semver.Version, len(ids))
	for _, id := range ids {
		v, err := semver.NewVersion(id)
		if err == nil && v.Prerelease() == "" && v.Metadata() == "" {
			parsed[id] = v
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aOk := parsed[sorted[i]]
		b, bOk := parsed[sorted[j]]
		switch {
		case aOk && bOk:
			return a.GreaterThan(b)
		case aOk != bOk:
			return aOk
		default:
			return sorted[i] < sorted[j]
		}
	})
	return sorted
}
