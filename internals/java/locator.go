// Package java finds java runtimes installed on the system
package java

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Locator returns paths to java executables. The best candidate comes first
type Locator interface {
	Candidates() []string
}

// runFunc executes a program and returns its stdout
type runFunc func(name string, args ...string) ([]byte, error)

func execOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// System asks the operating system for installed runtimes.
// It prefers the alternatives registry and falls back to searching the PATH
type System struct {
	// GOOS overwrites runtime.GOOS if set
	GOOS string
	run  runFunc
}

// NewSystem returns a locator for the current platform
func NewSystem() *System {
	return &System{GOOS: runtime.GOOS, run: execOutput}
}

// Candidates never fails. No output means no java was found
func (s *System) Candidates() []string {
	run := s.run
	if run == nil {
		run = execOutput
	}
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "windows":
		return lines(run("where", "java"))
	case "darwin": // macOS
		if home := lines(run("/usr/libexec/java_home")); len(home) != 0 {
			return []string{Bin(home[0], goos)}
		}
		return lines(run("which", "java"))
	default:
		if found := lines(run("update-alternatives", "--list", "java")); len(found) != 0 {
			return found
		}
		return lines(run("which", "java"))
	}
}

// First returns the first candidate of l
func First(l Locator) (string, bool) {
	candidates := l.Candidates()
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}

// Bin returns the java executable inside the java home dir for goos
func Bin(home string, goos string) string {
	bin := "bin/java"
	if goos == "windows" {
		bin = "bin/java.exe"
	}
	return filepath.Join(home, bin)
}

// lines splits program output. Failed programs produce no lines
func lines(out []byte, err error) []string {
	if err != nil {
		return nil
	}
	found := make([]string, 0, 1)
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			found = append(found, line)
		}
	}
	return found
}

// Static is a Locator that always returns the same paths
type Static []string

// Candidates returns the static paths
func (s Static) Candidates() []string { return s }
