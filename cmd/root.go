package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"
	"github.com/minepkg/mclaunch/cmd/config"
	"github.com/minepkg/mclaunch/internals/cmdlog"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set by goreleaser
	Version string
	// Commit is set by goreleaser
	Commit string
)

var logger *cmdlog.Logger = cmdlog.New()

var (
	cfgFile       string
	disableColors bool
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: launcher.Version,
	Use:     "mclaunch",
	Short:   "Launches installed Minecraft versions",
	Long:    "Builds the java command line for an installed Minecraft version and starts it",

	Example: `
  mclaunch session offline Steve
  mclaunch launch 1.12.2
  mclaunch args fabric-loader-0.14.9-1.18.2 --vars`,
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Args:  cobra.MaximumNArgs(1),
	Short: "Output shell completion code for bash",
	Long: `To load completion run

. <(mclaunch completion)

You can add that line to your ~/.bashrc or ~/.profile to
persist completion in your shell.
`,
	Run: func(cmd *cobra.Command, args []string) {
		rootCmd.GenBashCompletion(os.Stdout)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if Version != "" {
		rootCmd.Version = Version
	}
	if Commit != "" {
		rootCmd.Version += " (" + Commit + ")"
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print internal warnings and debug output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <config dir>/mclaunch/config.toml)")

	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(config.SubCmd)
}

// configDir returns the directory for the config file and the stored session
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mclaunch"), nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		color.Disable()
		commands.SetEmoji(false)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if dir, err := configDir(); err == nil {
		viper.SetConfigFile(filepath.Join(dir, "config.toml"))
	}

	viper.SetEnvPrefix("MCLAUNCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// a missing config file is fine
	configErr := viper.ReadInConfig()

	if verbose || viper.GetBool("verboselogging") {
		logger.SetVerbose(true)
	} else {
		// internal [WARN] lines are only interesting in verbose mode
		log.SetOutput(io.Discard)
	}

	if configErr == nil {
		logger.Debug("Using config file: " + viper.ConfigFileUsed())
	}
}
