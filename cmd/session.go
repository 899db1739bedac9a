package cmd

import (
	"errors"
	"fmt"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/auth"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the session used to launch the game",
}

func init() {
	offline := commands.New(&cobra.Command{
		Use:   "offline <name>",
		Short: "Stores an offline session for the given player name",
		Args:  cobra.ExactArgs(1),
	}, &sessionOfflineRunner{})

	show := commands.New(&cobra.Command{
		Use:   "show",
		Short: "Shows the stored session",
		Args:  cobra.NoArgs,
	}, &sessionShowRunner{})

	clearCmd := commands.New(&cobra.Command{
		Use:     "clear",
		Short:   "Removes the stored session",
		Aliases: []string{"logout"},
		Args:    cobra.NoArgs,
	}, &sessionClearRunner{})

	sessionCmd.AddCommand(offline.Command, show.Command, clearCmd.Command)
	rootCmd.AddCommand(sessionCmd)
}

func sessionStore() (*auth.Store, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return auth.NewStore(dir), nil
}

type sessionOfflineRunner struct{}

func (s *sessionOfflineRunner) RunE(cmd *cobra.Command, args []string) error {
	store, err := sessionStore()
	if err != nil {
		return err
	}
	session := auth.Offline(args[0])
	if err := store.Set(session); err != nil {
		return err
	}
	fmt.Println("Stored offline session for " + gchalk.Bold(session.Profile.Name))
	return nil
}

type sessionShowRunner struct{}

func (s *sessionShowRunner) RunE(cmd *cobra.Command, args []string) error {
	store, err := sessionStore()
	if err != nil {
		return err
	}
	session, err := store.Session()
	if errors.Is(err, auth.ErrNoSession) {
		logger.Info("No session stored")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("  name: %s\n", session.Profile.Name)
	fmt.Printf("  uuid: %s\n", session.Profile.ID)
	if store.NoKeyRingMode {
		logger.Debug("session is stored in a file because no keyring is available")
	}
	return nil
}

type sessionClearRunner struct{}

func (s *sessionClearRunner) RunE(cmd *cobra.Command, args []string) error {
	store, err := sessionStore()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	logger.Info("Session removed")
	return nil
}
