package launcher

import (
	"log"

	"github.com/minepkg/mclaunch/internals/placeholder"
	"github.com/pkg/errors"
)

// baseJVMOptions always come first, before the options of the version
var baseJVMOptions = []JVMOption{
	"-Xmn128m",
	"-Xmx2048m",
	"-XX:+UseG1GC",
	"-XX:-UseAdaptiveSizePolicy",
	"-XX:-OmitStackTraceInFastThrow",
	"-Dfml.ignoreInvalidMinecraftCertificates=true",
	"-Dfml.ignorePatchDiscrepancies=true",
}

// Resolve builds the launch arguments for the version of l.
// Nothing is written to disk
func (l *Launcher) Resolve() (*LaunchArguments, error) {
	program := l.javaPath

	version, err := l.manager.VersionOf(l.versionID)
	switch {
	case errors.Is(err, ErrVersionNotFound):
		return nil, newError(ErrVersionNotFound, err)
	case err != nil:
		return nil, newError(ErrVersionUnreadable, err)
	}

	mainClass, ok := version.MainClass()
	if !ok {
		log.Println("[WARN] version has no main class")
	}

	natives, err := version.NativeCollection(l.librariesDir)
	if err != nil {
		return nil, newError(ErrNativeResolution, err)
	}

	jvmOptions := make([]JVMOption, len(baseJVMOptions))
	copy(jvmOptions, baseJVMOptions)

	vars := l.Variables(version)
	nativesDir := vars["natives_directory"]
	strategy := placeholder.Map(vars)

	gameArgs, err := version.GameArguments(strategy)
	if err != nil {
		return nil, newError(ErrTemplateExpansion, errors.Wrap(err, "game arguments"))
	}
	jvmArgs, err := version.JVMArguments(strategy)
	if err != nil {
		return nil, newError(ErrTemplateExpansion, errors.Wrap(err, "jvm arguments"))
	}
	for _, arg := range jvmArgs {
		jvmOptions = append(jvmOptions, JVMOption(arg))
	}

	return &LaunchArguments{
		mainClass:   mainClass,
		program:     program,
		jvmOptions:  jvmOptions,
		gameOptions: ParseGameOptions(gameArgs),
		nativesDir:  nativesDir,
		natives:     natives,
		dir:         l.gameDir,
	}, nil
}
