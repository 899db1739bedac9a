package launcher

import (
	"path/filepath"

	"github.com/minepkg/mclaunch/internals/placeholder"
	"github.com/pkg/errors"
)

type fakeNatives struct {
	written []string
	err     error
	dirs    []string
}

func (n *fakeNatives) ExtractTo(dir string) ([]string, error) {
	n.dirs = append(n.dirs, dir)
	return n.written, n.err
}

type fakeVersion struct {
	mainClass    string
	assetIndex   string
	versionType  string
	classpath    string
	classpathErr error
	natives      Natives
	nativesErr   error
	game         []string
	jvm          []string
}

func (v *fakeVersion) MainClass() (string, bool)  { return v.mainClass, v.mainClass != "" }
func (v *fakeVersion) AssetIndex() (string, bool) { return v.assetIndex, v.assetIndex != "" }
func (v *fakeVersion) Type() string               { return v.versionType }

func (v *fakeVersion) Classpath(librariesDir string, primaryJar string) (string, error) {
	if v.classpathErr != nil {
		return "", v.classpathErr
	}
	return v.classpath + ":" + primaryJar, nil
}

func (v *fakeVersion) NativeCollection(librariesDir string) (Natives, error) {
	if v.nativesErr != nil {
		return nil, v.nativesErr
	}
	if v.natives == nil {
		return &fakeNatives{}, nil
	}
	return v.natives, nil
}

func expand(templates []string, s placeholder.Strategy) ([]string, error) {
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		v, err := placeholder.Apply(t, s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (v *fakeVersion) GameArguments(s placeholder.Strategy) ([]string, error) {
	return expand(v.game, s)
}

func (v *fakeVersion) JVMArguments(s placeholder.Strategy) ([]string, error) {
	return expand(v.jvm, s)
}

type fakeManager struct {
	dir      string
	versions map[string]*fakeVersion
	lookups  int
}

func (m *fakeManager) VersionOf(id string) (GameVersion, error) {
	m.lookups++
	v, ok := m.versions[id]
	if !ok {
		return nil, errors.Wrap(ErrVersionNotFound, id)
	}
	return v, nil
}

func (m *fakeManager) NativesPath(id string) string {
	return filepath.Join(m.dir, id, "natives")
}

func (m *fakeManager) PrimaryJarPath(id string) string {
	return filepath.Join(m.dir, id, id+".jar")
}

func legacyFake() *fakeVersion {
	return &fakeVersion{
		mainClass:   "net.minecraft.client.main.Main",
		assetIndex:  "1.12",
		versionType: "release",
		classpath:   "/libs/a.jar",
		game: []string{
			"--username", "${auth_player_name}",
			"--version", "${version_name}",
			"--gameDir", "${game_directory}",
			"--uuid", "${auth_uuid}",
			"--accessToken", "${auth_access_token}",
			"--demo",
		},
		jvm: []string{
			"-Djava.library.path=${natives_directory}",
			"-cp",
			"${classpath}",
		},
	}
}
