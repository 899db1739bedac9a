package minecraft

import "runtime"

// Rule is a rule that can be applied to an argument or library.
// It can be used to determine if the argument or library should be applied to a specific OS.
type Rule struct {
	Action   string          `json:"action"`
	OS       OS              `json:"os"`
	Features map[string]bool `json:"features"`
}

// OS defines the feature of an OS that can be used in a [Rule] to determine if it should be applied.
type OS struct {
	Name string `json:"name"`
	// Version of the os (can be a regex string)
	Version string `json:"version"`
	// Arch of the system
	Arch string `json:"arch"`
}

// Platform is the system rules are evaluated against
type Platform struct {
	// OS is the os name as used in version manifests (linux, windows, osx)
	OS string
	// Arch is the architecture as used in version manifests (x64, x86, arm64 …)
	Arch string
	// Features are launcher features like "has_custom_resolution"
	Features map[string]bool
}

// CurrentPlatform returns the platform this program runs on
func CurrentPlatform() Platform {
	return NewPlatform(runtime.GOOS, runtime.GOARCH)
}

// NewPlatform maps go os and arch names to the ones used in version manifests.
// Only the custom resolution feature is enabled
func NewPlatform(goos string, goarch string) Platform {
	os := goos
	if os == "darwin" {
		os = "osx"
	}

	arch := goarch
	switch arch {
	case "amd64", "x86_64":
		arch = "x64"
	case "386", "i386":
		arch = "x86"
	case "arm":
		arch = "arm32"
	}
	// note: we don't know how other platforms are named

	return Platform{
		OS:       os,
		Arch:     arch,
		Features: map[string]bool{"has_custom_resolution": true},
	}
}

// Bits returns "32" or "64". It replaces ${arch} in native classifiers
func (p Platform) Bits() string {
	if p.Arch == "x86" || p.Arch == "arm32" {
		return "32"
	}
	return "64"
}

func (r Rule) featuresMatch(p Platform) bool {
	for feature, wanted := range r.Features {
		if p.Features[feature] != wanted {
			return false
		}
	}
	return true
}

// matches reports if every condition of the rule holds on p.
// OS version regexes are not evaluated: they match if the os name does
func (r Rule) matches(p Platform) bool {
	if r.OS.Name != "" && r.OS.Name != p.OS {
		return false
	}
	if r.OS.Arch != "" && r.OS.Arch != p.Arch {
		return false
	}
	return r.featuresMatch(p)
}

func (r Rule) appliesFor(p Platform) bool {
	switch r.Action {
	case "allow":
		// TODO: check version (regex), we deny it for now
		if r.OS.Version != "" {
			return false
		}
		return r.matches(p)
	case "disallow":
		return !r.matches(p)
	default:
		// unknown action
		return true
	}
}

// allowed returns true if every rule applies for p
func allowed(rules []Rule, p Platform) bool {
	for _, rule := range rules {
		if !rule.appliesFor(p) {
			return false
		}
	}
	return true
}
