package minecraft

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Libraries as a collection of minecraft libs
type Libraries []Library

// Required returns only the libraries whose rules apply on p
func (l Libraries) Required(p Platform) Libraries {
	required := make(Libraries, 0, len(l))
	for _, lib := range l {
		if allowed(lib.Rules, p) {
			required = append(required, lib)
		}
	}
	return required
}

// LibraryFile is one downloadable file of a library
type LibraryFile struct {
	// Path relative to the libraries dir
	Path string `json:"path,omitempty"`
	Sha1 string `json:"sha1,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Library is a minecraft library
type Library struct {
	// Name is the maven coordinate (group:name:version[:classifier])
	Name      string `json:"name"`
	Downloads struct {
		Artifact *LibraryFile `json:"artifact,omitempty"`
		// Classifiers is a list of additional artifacts.
		// It is used to download native libraries.
		// The `Natives` field is used to determine which classifier to use.
		// This field is no longer used after 1.19
		Classifiers map[string]LibraryFile `json:"classifiers,omitempty"`
	} `json:"downloads,omitempty"`
	URL string `json:"url,omitempty"`
	// Rules is a list of rules that determine whether this library should be included.
	// If no rules are specified, the library is included by default.
	Rules []Rule `json:"rules,omitempty"`
	// Natives is a map of OS names to native classifier names.
	// This field is no longer used after 1.19
	// Newer library versions extract the native library from a jar at runtime.
	Natives map[string]string `json:"natives,omitempty"`
	// Extract lists path prefixes to skip when extracting natives
	Extract *struct {
		Exclude []string `json:"exclude"`
	} `json:"extract,omitempty"`
}

// NativesOnly returns true if this library only provides native files
// and has nothing to put on the classpath
func (l *Library) NativesOnly() bool {
	return len(l.Natives) != 0 && l.Downloads.Artifact == nil
}

// Filepath returns the jar path relative to the libraries folder
func (l *Library) Filepath() (string, error) {
	if l.Downloads.Artifact != nil && l.Downloads.Artifact.Path != "" {
		return filepath.FromSlash(l.Downloads.Artifact.Path), nil
	}
	return mavenPath(l.Name)
}

// NativeFilepath returns the path of the native jar for p relative to the libraries folder.
// ok is false if this library has no natives for p
func (l *Library) NativeFilepath(p Platform) (path string, ok bool, err error) {
	classifier, ok := l.Natives[p.OS]
	if !ok {
		return "", false, nil
	}
	classifier = strings.ReplaceAll(classifier, "${arch}", p.Bits())

	native, found := l.Downloads.Classifiers[classifier]
	switch {
	case found && native.Path != "":
		return filepath.FromSlash(native.Path), true, nil
	case found || len(l.Downloads.Classifiers) == 0:
		// no download info, the name tells us where it is
		path, err := mavenPath(l.Name + ":" + classifier)
		return path, true, err
	default:
		return "", true, errors.Errorf("library %s has no %s classifier", l.Name, classifier)
	}
}

// mavenPath converts a maven coordinate into a relative path.
// example: org.lwjgl:lwjgl:3.2.2 -> org/lwjgl/lwjgl/3.2.2/lwjgl-3.2.2.jar
func mavenPath(coordinate string) (string, error) {
	ext := "jar"
	if at := strings.LastIndex(coordinate, "@"); at != -1 {
		ext = coordinate[at+1:]
		coordinate = coordinate[:at]
	}

	parts := strings.Split(coordinate, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return "", errors.Errorf("invalid library name %q", coordinate)
	}
	for _, part := range parts {
		if part == "" {
			return "", errors.Errorf("invalid library name %q", coordinate)
		}
	}

	group, name, version := parts[0], parts[1], parts[2]
	file := name + "-" + version
	if len(parts) == 4 {
		file += "-" + parts[3]
	}

	basePath := filepath.Join(strings.Split(group, ".")...)
	return filepath.Join(basePath, name, version, file+"."+ext), nil
}
