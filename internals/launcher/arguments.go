package launcher

import (
	"os"
	"os/exec"
	"strings"
)

// JVMOption is a single java option like -Xmx2048m
type JVMOption string

// GameOption is a game flag with an optional value
type GameOption struct {
	Name     string
	Value    string
	HasValue bool
}

// NewGameFlag returns an option without value (like --demo)
func NewGameFlag(name string) GameOption {
	return GameOption{Name: name}
}

// NewGameOption returns an option with a value (like --username Steve)
func NewGameOption(name string, value string) GameOption {
	return GameOption{Name: name, Value: value, HasValue: true}
}

// Tokens returns the option as it is passed to the game
func (o GameOption) Tokens() []string {
	if o.HasValue {
		return []string{o.Name, o.Value}
	}
	return []string{o.Name}
}

// ParseGameOptions groups expanded game arguments into options.
// A token starting with "-" takes the next token as value unless that one starts with "-" too
func ParseGameOptions(tokens []string) []GameOption {
	options := make([]GameOption, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if strings.HasPrefix(token, "-") && i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") {
			options = append(options, NewGameOption(token, tokens[i+1]))
			i++
			continue
		}
		options = append(options, NewGameFlag(token))
	}
	return options
}

// LaunchArguments is everything needed to start the game.
// It keeps no reference to the launcher or session it was created from
type LaunchArguments struct {
	mainClass   string
	program     string
	jvmOptions  []JVMOption
	gameOptions []GameOption
	nativesDir  string
	natives     Natives
	dir         string

	// start is used to start the process. Defaults to (*exec.Cmd).Start
	start func(cmd *exec.Cmd) error
}

// Start extracts the natives and then starts java.
// Java is not started if extracting fails
func (a *LaunchArguments) Start() (*exec.Cmd, error) {
	if _, err := a.ExtractNatives(); err != nil {
		return nil, err
	}
	return a.Spawn()
}

// ExtractNatives writes the native libraries into the natives dir
// and returns the written file names
func (a *LaunchArguments) ExtractNatives() ([]string, error) {
	if a.natives == nil {
		return []string{}, nil
	}
	written, err := a.natives.ExtractTo(a.nativesDir)
	if err != nil {
		return written, newError(ErrExtraction, err)
	}
	return written, nil
}

// Command returns the (not yet started) java command.
// Output goes to the output of this process
func (a *LaunchArguments) Command() *exec.Cmd {
	cmd := exec.Command(a.program, a.Args()...)
	cmd.Dir = a.dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Spawn starts java without extracting natives.
// The returned command is running, waiting for it is up to the caller
func (a *LaunchArguments) Spawn() (*exec.Cmd, error) {
	cmd := a.Command()
	start := a.start
	if start == nil {
		start = (*exec.Cmd).Start
	}
	if err := start(cmd); err != nil {
		return nil, newError(ErrSpawn, err)
	}
	return cmd, nil
}

// Program returns the java executable
func (a *LaunchArguments) Program() string {
	return a.program
}

// MainClass returns the java class that is launched
func (a *LaunchArguments) MainClass() string {
	return a.mainClass
}

// NativesDir returns the directory natives are extracted to
func (a *LaunchArguments) NativesDir() string {
	return a.nativesDir
}

// Dir returns the working directory of the game
func (a *LaunchArguments) Dir() string {
	return a.dir
}

// JVMOptions returns a copy of the java options
func (a *LaunchArguments) JVMOptions() []JVMOption {
	return append([]JVMOption{}, a.jvmOptions...)
}

// GameOptions returns a copy of the game options
func (a *LaunchArguments) GameOptions() []GameOption {
	return append([]GameOption{}, a.gameOptions...)
}

// Args returns the arguments java is started with:
// jvm options, then the main class, then the game options
func (a *LaunchArguments) Args() []string {
	args := make([]string, 0, len(a.jvmOptions)+1+len(a.gameOptions)*2)
	for _, option := range a.jvmOptions {
		args = append(args, string(option))
	}
	args = append(args, a.mainClass)
	for _, option := range a.gameOptions {
		args = append(args, option.Tokens()...)
	}
	return args
}
