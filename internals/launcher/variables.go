package launcher

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

// VariableNames are all variables that can be used in argument templates
var VariableNames = []string{
	"auth_access_token",
	"user_properties",
	"user_property_map",
	"auth_session",
	"auth_player_name",
	"auth_uuid",
	"user_type",
	"profile_name",
	"version_name",
	"game_directory",
	"assets_root",
	"assets_index_name",
	"version_type",
	"resolution_width",
	"resolution_height",
	"language",
	"launcher_name",
	"launcher_version",
	"natives_directory",
	"primary_jar",
	"classpath",
	"classpath_separator",
}

// Variables returns the values for all VariableNames.
// Missing optional data (asset index, classpath) results in an empty value instead of an error
func (l *Launcher) Variables(version GameVersion) map[string]string {
	profile := l.session.UserProfile()
	name := profile.Name
	uuid := profile.UUID().Simple()
	accessToken := l.session.AccessToken.Simple()

	assetIndex, ok := version.AssetIndex()
	if !ok {
		log.Println("[WARN] version has no asset index")
	}

	primaryJar := l.manager.PrimaryJarPath(l.versionID)
	classpath, err := version.Classpath(l.librariesDir, primaryJar)
	if err != nil {
		// TODO: decide if a broken classpath should fail the launch instead
		log.Printf("[WARN] could not build classpath: %s", err)
		classpath = ""
	}

	return map[string]string{
		"auth_access_token": accessToken,
		"user_properties":   "{}",
		"user_property_map": "{}",
		"auth_session":      fmt.Sprintf("token:%s:%s", accessToken, uuid),
		"auth_player_name":  name,
		"auth_uuid":         uuid,
		"user_type":         "legacy",
		"profile_name":      name,
		// the minecraft version
		"version_name": l.versionID,
		// minecraft game dir that contains saves, worlds & mods
		"game_directory": l.gameDir,
		// asset dir contains some shared minecraft resources like sounds & some textures
		"assets_root":       l.assetsDir,
		"assets_index_name": assetIndex,
		// release / snapshot … etc
		"version_type":        version.Type(),
		"resolution_width":    fmt.Sprintf("%d", l.resolution.Width),
		"resolution_height":   fmt.Sprintf("%d", l.resolution.Height),
		"language":            "en-us",
		"launcher_name":       l.launcherName,
		"launcher_version":    l.launcherVersion,
		"natives_directory":   l.manager.NativesPath(l.versionID),
		"primary_jar":         primaryJar,
		"classpath":           classpath,
		"classpath_separator": string(os.PathListSeparator),
	}
}

// ResolveVariables looks up the version of l and returns its variables
func (l *Launcher) ResolveVariables() (map[string]string, error) {
	version, err := l.manager.VersionOf(l.versionID)
	switch {
	case errors.Is(err, ErrVersionNotFound):
		return nil, newError(ErrVersionNotFound, err)
	case err != nil:
		return nil, newError(ErrVersionUnreadable, err)
	}
	return l.Variables(version), nil
}
