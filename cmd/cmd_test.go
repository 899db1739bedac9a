package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/minepkg/mclaunch/internals/auth"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/zalando/go-keyring"
)

func TestSortVersions(t *testing.T) {
	in := []string{
		"1.8.9",
		"22w13a",
		"1.12.2",
		"fabric-loader-0.14.9-1.18.2",
		"1.19-pre1",
		"1.18.2",
		"1.12",
	}
	want := []string{
		"1.18.2",
		"1.12.2",
		"1.12",
		"1.8.9",
		"1.19-pre1",
		"22w13a",
		"fabric-loader-0.14.9-1.18.2",
	}

	got := sortVersions(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortVersions() = %v, want %v", got, want)
	}
	if in[0] != "1.8.9" {
		t.Error("input should not be modified")
	}
}

func TestDefaultGameDir(t *testing.T) {
	tests := []struct {
		goos    string
		appData string
		want    string
	}{
		{"linux", "", filepath.Join("/home/steve", ".minecraft")},
		{"darwin", "", filepath.Join("/home/steve", "Library", "Application Support", "minecraft")},
		{"windows", "/appdata", filepath.Join("/appdata", ".minecraft")},
		{"windows", "", filepath.Join("/home/steve", "AppData", "Roaming", ".minecraft")},
	}

	for _, tt := range tests {
		if got := defaultGameDir(tt.goos, "/home/steve", tt.appData); got != tt.want {
			t.Errorf("defaultGameDir(%s) = %s, want %s", tt.goos, got, tt.want)
		}
	}
}

func TestLaunchError(t *testing.T) {
	kinds := []error{
		launcher.ErrRuntimeNotFound,
		launcher.ErrVersionNotFound,
		launcher.ErrVersionUnreadable,
		launcher.ErrNativeResolution,
		launcher.ErrTemplateExpansion,
		launcher.ErrExtraction,
		launcher.ErrSpawn,
	}
	for _, kind := range kinds {
		err := launchError(&launcher.Error{Kind: kind})
		var cliErr *commands.CliError
		if !errors.As(err, &cliErr) {
			t.Errorf("%v: expected a CliError", kind)
			continue
		}
		if cliErr.Help == "" {
			t.Errorf("%v: expected help text", kind)
		}
		if !errors.Is(err, kind) {
			t.Errorf("%v: kind got lost", kind)
		}
	}

	other := errors.New("other")
	if launchError(other) != other {
		t.Error("unknown errors should be returned as is")
	}
}

func TestPrintVariables(t *testing.T) {
	buf := &bytes.Buffer{}
	printVariables(buf, map[string]string{
		"version_name":     "1.12.2",
		"auth_player_name": "Steve",
		"language":         "en-us",
	})

	want := "auth_player_name=Steve\nlanguage=en-us\nversion_name=1.12.2\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLaunchFlagsOffline(t *testing.T) {
	flags := &launchFlags{Offline: "Steve"}
	session, err := flags.session()
	if err != nil {
		t.Fatal(err)
	}
	if session.Profile.Name != "Steve" || session.AccessToken != "0" {
		t.Errorf("unexpected session %+v", session)
	}
}

func TestLaunchFlagsProvider(t *testing.T) {
	keyring.MockInit()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	flags := &launchFlags{}
	provider, err := flags.provider()
	if err != nil {
		t.Fatal(err)
	}
	store, ok := provider.(*auth.Store)
	if !ok {
		t.Fatalf("expected the session store, got %T", provider)
	}

	var cliErr *commands.CliError
	if _, err := flags.session(); !errors.As(err, &cliErr) || !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("expected a CliError wrapping ErrNoSession, got %v", err)
	}

	if err := store.Set(auth.Offline("Alex")); err != nil {
		t.Fatal(err)
	}
	session, err := flags.session()
	if err != nil {
		t.Fatal(err)
	}
	if session.Profile.Name != "Alex" {
		t.Errorf("expected the stored session, got %+v", session)
	}

	// --offline wins over the stored session
	flags.Offline = "Steve"
	provider, err = flags.provider()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := provider.(*auth.Session); !ok {
		t.Fatalf("expected an offline session, got %T", provider)
	}
	session, err = flags.session()
	if err != nil {
		t.Fatal(err)
	}
	if session.Profile.Name != "Steve" {
		t.Errorf("expected the offline session, got %+v", session)
	}
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
}

func TestLaunchFlagsOptions(t *testing.T) {
	flags := &launchFlags{Java: "/opt/java/bin/java", Width: 1280, Height: 720}
	opts := flags.options()
	if opts.Java != "/opt/java/bin/java" {
		t.Errorf("unexpected java %s", opts.Java)
	}
	if opts.Resolution != (launcher.Resolution{Width: 1280, Height: 720}) {
		t.Errorf("unexpected resolution %v", opts.Resolution)
	}
}
