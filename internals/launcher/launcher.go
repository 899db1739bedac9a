// Package launcher turns a version manifest and a session into
// a java command line and starts it.
package launcher

import (
	"path/filepath"

	"github.com/minepkg/mclaunch/internals/auth"
	"github.com/minepkg/mclaunch/internals/java"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/placeholder"
	"github.com/pkg/errors"
)

const (
	// Name is passed to the game as launcher_name
	Name = "mclaunch"
	// Version is passed to the game as launcher_version
	Version = "0.1.0"
)

// DefaultResolution is the window size used if none is set
var DefaultResolution = Resolution{Width: 854, Height: 480}

// Resolution is the game window size
type Resolution struct {
	Width  uint32
	Height uint32
}

// VersionManager looks up versions and knows where their files are
type VersionManager interface {
	VersionOf(id string) (GameVersion, error)
	NativesPath(id string) string
	PrimaryJarPath(id string) string
}

// GameVersion is a resolved version manifest
type GameVersion interface {
	MainClass() (string, bool)
	AssetIndex() (string, bool)
	Type() string
	Classpath(librariesDir string, primaryJar string) (string, error)
	NativeCollection(librariesDir string) (Natives, error)
	GameArguments(s placeholder.Strategy) ([]string, error)
	JVMArguments(s placeholder.Strategy) ([]string, error)
}

// Natives can be extracted into a directory
type Natives interface {
	ExtractTo(dir string) ([]string, error)
}

// Options change how a Launcher is created. The zero value is fine
type Options struct {
	// Locator finds java. Defaults to the system locator
	Locator java.Locator
	// Java is the java executable to use. Skips the locator if set
	Java string
	// Resolution is the window size. Defaults to DefaultResolution
	Resolution Resolution
	// Manager overwrites the version manager for <gameDir>/versions
	Manager VersionManager
}

// Launcher holds everything needed to launch one version for one session.
// It does not change after New
type Launcher struct {
	versionID       string
	javaPath        string
	gameDir         string
	assetsDir       string
	librariesDir    string
	manager         VersionManager
	launcherName    string
	launcherVersion string
	session         *auth.Session
	resolution      Resolution
}

// New returns a launcher for versionID inside gameDir.
// It fails with ErrRuntimeNotFound before doing anything else if no java can be found
func New(gameDir string, versionID string, session *auth.Session, opts *Options) (*Launcher, error) {
	if opts == nil {
		opts = &Options{}
	}

	javaPath := opts.Java
	if javaPath == "" {
		locator := opts.Locator
		if locator == nil {
			locator = java.NewSystem()
		}
		found, ok := java.First(locator)
		if !ok {
			return nil, newError(ErrRuntimeNotFound, nil)
		}
		javaPath = found
	}

	if versionID == "" {
		return nil, newError(ErrVersionNotFound, errors.New("no version given"))
	}
	if session == nil {
		return nil, auth.ErrNoSession
	}

	manager := opts.Manager
	if manager == nil {
		manager = minecraftManager{minecraft.NewManager(filepath.Join(gameDir, "versions"))}
	}

	resolution := opts.Resolution
	if resolution.Width == 0 || resolution.Height == 0 {
		resolution = DefaultResolution
	}

	return &Launcher{
		versionID:       versionID,
		javaPath:        javaPath,
		gameDir:         gameDir,
		assetsDir:       filepath.Join(gameDir, "assets"),
		librariesDir:    filepath.Join(gameDir, "libraries"),
		manager:         manager,
		launcherName:    Name,
		launcherVersion: Version,
		session:         session,
		resolution:      resolution,
	}, nil
}

// VersionID returns the version that gets launched
func (l *Launcher) VersionID() string { return l.versionID }

// Java returns the java executable
func (l *Launcher) Java() string { return l.javaPath }

// GameDir returns the game root directory
func (l *Launcher) GameDir() string { return l.gameDir }

// AssetsDir returns the assets directory
func (l *Launcher) AssetsDir() string { return l.assetsDir }

// LibrariesDir returns the libraries directory
func (l *Launcher) LibrariesDir() string { return l.librariesDir }

// minecraftManager adapts the minecraft package to VersionManager
type minecraftManager struct {
	*minecraft.Manager
}

func (m minecraftManager) VersionOf(id string) (GameVersion, error) {
	v, err := m.Manager.VersionOf(id)
	if err != nil {
		return nil, err
	}
	return minecraftVersion{v}, nil
}

type minecraftVersion struct {
	*minecraft.Version
}

func (v minecraftVersion) NativeCollection(librariesDir string) (Natives, error) {
	natives, err := v.Version.NativeCollection(librariesDir)
	if err != nil {
		return nil, err
	}
	return natives, nil
}
