package minecraft

import (
	"os"
	"path/filepath"
	"strings"
)

// Version is a resolved version manifest, with all parents merged in
type Version struct {
	manifest *Manifest
	platform Platform
}

// ID returns the version id
func (v *Version) ID() string {
	return v.manifest.ID
}

// MainClass returns the java class to launch. ok is false if the manifest does not declare one
func (v *Version) MainClass() (string, bool) {
	return v.manifest.MainClass, v.manifest.MainClass != ""
}

// AssetIndex returns the asset index id. Falls back to the legacy "assets" field
func (v *Version) AssetIndex() (string, bool) {
	switch {
	case v.manifest.AssetIndex.ID != "":
		return v.manifest.AssetIndex.ID, true
	case v.manifest.Assets != "":
		return v.manifest.Assets, true
	default:
		return "", false
	}
}

// Type returns the version type (release, snapshot …)
func (v *Version) Type() string {
	return v.manifest.Type
}

// Classpath builds that spooky -cp arg. Every library jar is resolved inside librariesDir
// and the primary jar comes last
func (v *Version) Classpath(librariesDir string, primaryJar string) (string, error) {
	seen := make(map[string]bool)
	paths := make([]string, 0, len(v.manifest.Libraries)+1)

	for _, lib := range v.manifest.Libraries.Required(v.platform) {
		if lib.NativesOnly() {
			continue
		}
		rel, err := lib.Filepath()
		if err != nil {
			return "", err
		}
		p := filepath.Join(librariesDir, rel)
		if seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}

	// finally append the minecraft.jar
	paths = append(paths, primaryJar)
	return strings.Join(paths, string(os.PathListSeparator)), nil
}

// NativeCollection returns all native jars required on this platform
func (v *Version) NativeCollection(librariesDir string) (*NativeCollection, error) {
	collection := &NativeCollection{}
	for _, lib := range v.manifest.Libraries.Required(v.platform) {
		rel, ok, err := lib.NativeFilepath(v.platform)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		native := Native{Path: filepath.Join(librariesDir, rel)}
		if lib.Extract != nil {
			native.Exclude = lib.Extract.Exclude
		}
		collection.Natives = append(collection.Natives, native)
	}
	return collection, nil
}
