package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/minepkg/mclaunch/internals/auth"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// launchFlags are cli flags that overwrite the configured launch behavior
type launchFlags struct {
	Dir     string
	Java    string
	Width   uint32
	Height  uint32
	Offline string
}

func cmdLaunchFlags(cmd *cobra.Command) *launchFlags {
	flags := launchFlags{}
	cmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "Minecraft directory that contains versions, libraries & assets")
	cmd.Flags().StringVar(&flags.Java, "java", "", "Path to the java executable to use")
	cmd.Flags().Uint32Var(&flags.Width, "width", 0, "Window width")
	cmd.Flags().Uint32Var(&flags.Height, "height", 0, "Window height")
	cmd.Flags().StringVar(&flags.Offline, "offline", "", "Use an offline session with this player name")

	return &flags
}

// gameDir returns the flag, the configured or the default game directory
func (f *launchFlags) gameDir() (string, error) {
	if f.Dir != "" {
		return filepath.Abs(f.Dir)
	}
	if dir := viper.GetString("gamedir"); dir != "" {
		return filepath.Abs(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return defaultGameDir(runtime.GOOS, home, os.Getenv("APPDATA")), nil
}

// defaultGameDir returns the directory the official launcher uses
func defaultGameDir(goos string, home string, appData string) string {
	switch goos {
	case "windows":
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, ".minecraft")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "minecraft")
	default:
		return filepath.Join(home, ".minecraft")
	}
}

func (f *launchFlags) options() *launcher.Options {
	opts := &launcher.Options{
		Java: f.Java,
		Resolution: launcher.Resolution{
			Width:  f.Width,
			Height: f.Height,
		},
	}
	if opts.Java == "" {
		opts.Java = viper.GetString("java")
	}
	if opts.Resolution.Width == 0 {
		opts.Resolution.Width = viper.GetUint32("resolution.width")
	}
	if opts.Resolution.Height == 0 {
		opts.Resolution.Height = viper.GetUint32("resolution.height")
	}
	return opts
}

// provider returns an offline session if requested, the session store otherwise
func (f *launchFlags) provider() (auth.Provider, error) {
	if f.Offline != "" {
		return auth.Offline(f.Offline), nil
	}

	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return auth.NewStore(dir), nil
}

// session asks the provider for the session to launch with
func (f *launchFlags) session() (*auth.Session, error) {
	provider, err := f.provider()
	if err != nil {
		return nil, err
	}

	session, err := provider.Session()
	if errors.Is(err, auth.ErrNoSession) {
		return nil, &commands.CliError{
			Text: "You are not logged in",
			Err:  err,
			Help: "Create a session first or pass one for this launch",
			Suggestions: []string{
				"mclaunch session offline <name>",
				"mclaunch launch <version> --offline <name>",
			},
		}
	}
	return session, err
}

// newLauncher creates a launcher for versionID using the flags and config
func (f *launchFlags) newLauncher(versionID string) (*launcher.Launcher, error) {
	dir, err := f.gameDir()
	if err != nil {
		return nil, err
	}
	session, err := f.session()
	if err != nil {
		return nil, err
	}

	l, err := launcher.New(dir, versionID, session, f.options())
	if err != nil {
		return nil, launchError(err)
	}
	return l, nil
}

// launchError adds help texts to the errors of the launcher package
func launchError(err error) error {
	cliErr := &commands.CliError{Text: "Launch failed", Err: err}
	switch {
	case errors.Is(err, launcher.ErrRuntimeNotFound):
		cliErr.Help = "No java runtime was found on this system. Install java or point mclaunch to it"
		cliErr.Suggestions = []string{
			"mclaunch config set java /path/to/bin/java",
			"mclaunch launch <version> --java /path/to/bin/java",
		}
	case errors.Is(err, launcher.ErrVersionNotFound):
		cliErr.Help = "The version has to be installed (for example with the official launcher) before it can be launched"
		cliErr.Suggestions = []string{"mclaunch versions"}
	case errors.Is(err, launcher.ErrVersionUnreadable), errors.Is(err, launcher.ErrNativeResolution):
		cliErr.Help = "The installed version seems to be broken. Try reinstalling it"
	case errors.Is(err, launcher.ErrTemplateExpansion):
		cliErr.Help = "The version json contains a broken argument template. Try reinstalling the version"
		cliErr.Suggestions = []string{"mclaunch args <version> --vars"}
	case errors.Is(err, launcher.ErrExtraction):
		cliErr.Help = "Make sure the natives directory of the version is writable and the native libraries are downloaded"
	case errors.Is(err, launcher.ErrSpawn):
		cliErr.Help = "The java executable could not be started"
		cliErr.Suggestions = []string{"mclaunch info"}
	default:
		return err
	}
	return cliErr
}
