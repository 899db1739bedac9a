package launcher

import (
	"errors"
	"os/exec"
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
	"testing"

	"github.com/minepkg/mclaunch/internals/auth"
	"github.com/minepkg/mclaunch/internals/java"
)

func steve(t *testing.T) *auth.Session {
	t.Helper()
	id, err := auth.ParseUUID("069a79f4-44e9-4726-a5be-fca90e38aeca")
	if err != nil {
		t.Fatal(err)
	}
	return &auth.Session{
		Profile:     auth.Profile{Name: "Steve", ID: id},
		AccessToken: "abc123",
	}
}

func testLauncher(t *testing.T, versions map[string]*fakeVersion) (*Launcher, *fakeManager) {
	t.Helper()
	manager := &fakeManager{dir: "/home/user/.minecraft/versions", versions: versions}
	l, err := New("/home/user/.minecraft", "1.12.2", steve(t), &Options{
		Locator: java.Static{"/usr/lib/jvm/java-8/bin/java", "/usr/bin/java"},
		Manager: manager,
	})
	if err != nil {
		t.Fatal(err)
	}
	return l, manager
}

func TestNew_RuntimeNotFound(t *testing.T) {
	manager := &fakeManager{}
	// nothing else is checked before java
	l, err := New("", "", nil, &Options{Locator: java.Static{}, Manager: manager})
	if !errors.Is(err, ErrRuntimeNotFound) {
		t.Fatalf("expected ErrRuntimeNotFound, got %v", err)
	}
	if l != nil {
		t.Fatal("expected no launcher")
	}
	if manager.lookups != 0 {
		t.Fatal("version manager should not be used")
	}
}

func TestNew(t *testing.T) {
	l, _ := testLauncher(t, nil)
	if l.Java() != "/usr/lib/jvm/java-8/bin/java" {
		t.Errorf("expected first java candidate, got %s", l.Java())
	}
	if l.resolution != DefaultResolution {
		t.Errorf("unexpected resolution %v", l.resolution)
	}
	if l.AssetsDir() != filepath.Join("/home/user/.minecraft", "assets") {
		t.Errorf("unexpected assets dir %s", l.AssetsDir())
	}
	if l.LibrariesDir() != filepath.Join("/home/user/.minecraft", "libraries") {
		t.Errorf("unexpected libraries dir %s", l.LibrariesDir())
	}
	if l.launcherName != "mclaunch" || l.launcherVersion != Version {
		t.Errorf("unexpected launcher identity %s %s", l.launcherName, l.launcherVersion)
	}

	// explicit java skips the locator
	l, err := New("/mc", "1.12.2", steve(t), &Options{Locator: java.Static{}, Java: "/opt/java/bin/java"})
	if err != nil {
		t.Fatal(err)
	}
	if l.Java() != "/opt/java/bin/java" {
		t.Errorf("unexpected java %s", l.Java())
	}

	if _, err := New("/mc", "", steve(t), &Options{Java: "java"}); !errors.Is(err, ErrVersionNotFound) {
		t.Errorf("expected ErrVersionNotFound for empty version, got %v", err)
	}
	if _, err := New("/mc", "1.12.2", nil, &Options{Java: "java"}); !errors.Is(err, auth.ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestVariables(t *testing.T) {
	version := legacyFake()
	l, _ := testLauncher(t, map[string]*fakeVersion{"1.12.2": version})

	vars := l.Variables(version)

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	want := append([]string{}, VariableNames...)
	sort.Strings(keys)
	sort.Strings(want)
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}

	expected := map[string]string{
		"auth_player_name":  "Steve",
		"profile_name":      "Steve",
		"auth_uuid":         "069a79f444e94726a5befca90e38aeca",
		"auth_access_token": "abc123",
		"auth_session":      "token:abc123:069a79f444e94726a5befca90e38aeca",
		"game_directory":    "/home/user/.minecraft",
		"version_name":      "1.12.2",
		"version_type":      "release",
		"assets_index_name": "1.12",
		"user_type":         "legacy",
		"user_properties":   "{}",
		"user_property_map": "{}",
		"language":          "en-us",
		"resolution_width":  "854",
		"resolution_height": "480",
		"launcher_name":     "mclaunch",
	}
	for k, v := range expected {
		if vars[k] != v {
			t.Errorf("%s = %q, want %q", k, vars[k], v)
		}
	}

	if runtime.GOOS != "windows" {
		if vars["classpath_separator"] != ":" {
			t.Errorf("classpath_separator = %q", vars["classpath_separator"])
		}
		if vars["natives_directory"] != "/home/user/.minecraft/versions/1.12.2/natives" {
			t.Errorf("natives_directory = %q", vars["natives_directory"])
		}
		if vars["classpath"] != "/libs/a.jar:/home/user/.minecraft/versions/1.12.2/1.12.2.jar" {
			t.Errorf("classpath = %q", vars["classpath"])
		}
	}
}

func TestVariables_MissingData(t *testing.T) {
	version := legacyFake()
	version.assetIndex = ""
	version.classpathErr = errors.New("invalid library name")
	l, _ := testLauncher(t, map[string]*fakeVersion{"1.12.2": version})

	vars := l.Variables(version)
	if len(vars) != len(VariableNames) {
		t.Fatalf("expected %d variables, got %d", len(VariableNames), len(vars))
	}
	for _, name := range []string{"assets_index_name", "classpath"} {
		v, ok := vars[name]
		if !ok || v != "" {
			t.Errorf("%s = %q, %v; want empty value", name, v, ok)
		}
	}
}

func TestResolve(t *testing.T) {
	version := legacyFake()
	version.jvm = append(version.jvm, "-Xss1M")
	l, _ := testLauncher(t, map[string]*fakeVersion{"1.12.2": version})

	args, err := l.Resolve()
	if err != nil {
		t.Fatal(err)
	}

	if args.Program() != "/usr/lib/jvm/java-8/bin/java" {
		t.Errorf("Program() = %s", args.Program())
	}
	if args.MainClass() != "net.minecraft.client.main.Main" {
		t.Errorf("MainClass() = %s", args.MainClass())
	}

	jvm := args.JVMOptions()
	if len(jvm) != len(baseJVMOptions)+4 {
		t.Fatalf("unexpected jvm options %v", jvm)
	}
	if !reflect.DeepEqual(jvm[:len(baseJVMOptions)], baseJVMOptions) {
		t.Errorf("base options are not a prefix: %v", jvm)
	}
	if jvm[len(jvm)-1] != "-Xss1M" {
		t.Errorf("declared options should keep their order: %v", jvm)
	}

	game := args.GameOptions()
	wantGame := []GameOption{
		NewGameOption("--username", "Steve"),
		NewGameOption("--version", "1.12.2"),
		NewGameOption("--gameDir", "/home/user/.minecraft"),
		NewGameOption("--uuid", "069a79f444e94726a5befca90e38aeca"),
		NewGameOption("--accessToken", "abc123"),
		NewGameFlag("--demo"),
	}
	if !reflect.DeepEqual(game, wantGame) {
		t.Errorf("GameOptions() = %v, want %v", game, wantGame)
	}

	all := args.Args()
	mainIndex := len(jvm)
	if all[mainIndex] != args.MainClass() {
		t.Fatalf("main class should follow the jvm options: %v", all)
	}
	for i, option := range jvm {
		if all[i] != string(option) {
			t.Errorf("arg %d = %s, want %s", i, all[i], option)
		}
	}
	// 5 options with value and 1 flag
	if got := len(all) - mainIndex - 1; got != 5*2+1 {
		t.Errorf("expected 11 game tokens, got %d", got)
	}
	if args.NativesDir() != l.manager.NativesPath("1.12.2") {
		t.Errorf("NativesDir() = %s", args.NativesDir())
	}
}

func TestResolve_Deterministic(t *testing.T) {
	l, _ := testLauncher(t, map[string]*fakeVersion{"1.12.2": legacyFake()})
	first, err := l.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	second, err := l.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Args(), second.Args()) {
		t.Fatalf("args differ:\n%v\n%v", first.Args(), second.Args())
	}
}

func TestResolve_EmptyMainClass(t *testing.T) {
	version := legacyFake()
	version.mainClass = ""
	l, _ := testLauncher(t, map[string]*fakeVersion{"1.12.2": version})

	args, err := l.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if args.MainClass() != "" {
		t.Fatalf("expected empty main class, got %s", args.MainClass())
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		version func() *fakeVersion
		want    error
	}{
		{
			name:    "version not found",
			version: func() *fakeVersion { return nil },
			want:    ErrVersionNotFound,
		},
		{
			name: "natives",
			version: func() *fakeVersion {
				v := legacyFake()
				v.nativesErr = errors.New("library has no natives-windows-64 classifier")
				return v
			},
			want: ErrNativeResolution,
		},
		{
			name: "game template",
			version: func() *fakeVersion {
				v := legacyFake()
				v.game = []string{"--username", "${auth_player_name"}
				return v
			},
			want: ErrTemplateExpansion,
		},
		{
			name: "jvm template",
			version: func() *fakeVersion {
				v := legacyFake()
				v.jvm = []string{"${natives_directory"}
				return v
			},
			want: ErrTemplateExpansion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			versions := map[string]*fakeVersion{}
			if v := tt.version(); v != nil {
				versions["1.12.2"] = v
			}
			l, _ := testLauncher(t, versions)
			args, err := l.Resolve()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.want)
			}
			if args != nil {
				t.Fatal("expected no launch arguments on error")
			}
			var launchErr *Error
			if !errors.As(err, &launchErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
		})
	}
}

func TestStart_ExtractFails(t *testing.T) {
	natives := &fakeNatives{err: errors.New("disk full")}
	version := legacyFake()
	version.natives = natives
	l, _ := testLauncher(t, map[string]*fakeVersion{"1.12.2": version})

	args, err := l.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	started := false
	args.start = func(cmd *exec.Cmd) error {
		started = true
		return nil
	}

	cmd, err := args.Start()
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
	if cmd != nil || started {
		t.Fatal("java should not be started after failed extraction")
	}
}

func TestStart(t *testing.T) {
	var steps []string
	natives := &fakeNatives{written: []string{"liblwjgl.so"}}
	version := legacyFake()
	version.natives = natives
	l, _ := testLauncher(t, map[string]*fakeVersion{"1.12.2": version})

	args, err := l.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	args.start = func(cmd *exec.Cmd) error {
		steps = append(steps, "spawn")
		if len(natives.dirs) != 1 {
			t.Error("natives were not extracted before spawn")
		}
		if cmd.Path != args.Program() && cmd.Args[0] != args.Program() {
			t.Errorf("unexpected program %s", cmd.Path)
		}
		if !reflect.DeepEqual(cmd.Args[1:], args.Args()) {
			t.Errorf("unexpected args %v", cmd.Args[1:])
		}
		if cmd.Dir != "/home/user/.minecraft" {
			t.Errorf("unexpected dir %s", cmd.Dir)
		}
		return nil
	}

	if _, err := args.Start(); err != nil {
		t.Fatal(err)
	}
	if len(steps) != 1 || natives.dirs[0] != args.NativesDir() {
		t.Fatalf("unexpected steps %v, dirs %v", steps, natives.dirs)
	}
}

func TestSpawn_Fails(t *testing.T) {
	args := &LaunchArguments{program: "/this/java/does/not/exist", mainClass: "Main"}
	cmd, err := args.Spawn()
	if !errors.Is(err, ErrSpawn) {
		t.Fatalf("expected ErrSpawn, got %v", err)
	}
	if cmd != nil {
		t.Fatal("expected no command")
	}
}

func TestSpawn(t *testing.T) {
	bin, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true is not available")
	}
	args := &LaunchArguments{program: bin, mainClass: "Main", dir: t.TempDir()}
	cmd, err := args.Spawn()
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Process == nil {
		t.Fatal("expected a running process")
	}
	if err := cmd.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestResolveVariables(t *testing.T) {
	l, _ := testLauncher(t, map[string]*fakeVersion{"1.12.2": legacyFake()})
	vars, err := l.ResolveVariables()
	if err != nil {
		t.Fatal(err)
	}
	if vars["version_name"] != "1.12.2" || vars["assets_index_name"] != "1.12" {
		t.Errorf("unexpected variables %v", vars)
	}

	l, _ = testLauncher(t, nil)
	if _, err := l.ResolveVariables(); !errors.Is(err, ErrVersionNotFound) {
		t.Errorf("expected ErrVersionNotFound, got %v", err)
	}
}
