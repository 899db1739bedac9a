package minecraft

import "encoding/json"

// Manifest is a version.json manifest that is used to launch minecraft
type Manifest struct {
	ID           string `json:"id"`
	InheritsFrom string `json:"inheritsFrom,omitempty"`
	// Type is release, snapshot …
	Type      string `json:"type"`
	MainClass string `json:"mainClass"`
	// Jar is the version whose jar is launched. Defaults to ID
	Jar string `json:"jar,omitempty"`
	// Assets is the legacy asset index name
	Assets     string `json:"assets,omitempty"`
	AssetIndex struct {
		ID        string `json:"id"`
		Sha1      string `json:"sha1"`
		Size      int    `json:"size"`
		TotalSize int    `json:"totalSize"`
		URL       string `json:"url"`
	} `json:"assetIndex"`
	// MinecraftArguments are used before 1.13
	MinecraftArguments string `json:"minecraftArguments,omitempty"`
	// Arguments is the new (complicated) system
	Arguments struct {
		// Game and JVM entries are either plain strings or objects with rules & value
		Game []json.RawMessage `json:"game,omitempty"`
		JVM  []json.RawMessage `json:"jvm,omitempty"`
	} `json:"arguments"`
	Libraries Libraries `json:"libraries"`
}

// MergeManifests merges the parent into the source manifest.
// Fields of source win, libraries of source come first
// and argument lists of the parent come before the ones of source.
func MergeManifests(source *Manifest, parent *Manifest) {
	source.Libraries = append(source.Libraries, parent.Libraries...)

	if source.Type == "" {
		source.Type = parent.Type
	}
	if source.MainClass == "" {
		source.MainClass = parent.MainClass
	}
	if source.Jar == "" {
		source.Jar = parent.Jar
		if source.Jar == "" {
			source.Jar = parent.ID
		}
	}
	if source.Assets == "" {
		source.Assets = parent.Assets
	}
	if source.AssetIndex.ID == "" {
		source.AssetIndex = parent.AssetIndex
	}
	if source.MinecraftArguments == "" {
		source.MinecraftArguments = parent.MinecraftArguments
	}

	source.Arguments.Game = append(append([]json.RawMessage{}, parent.Arguments.Game...), source.Arguments.Game...)
	source.Arguments.JVM = append(append([]json.RawMessage{}, parent.Arguments.JVM...), source.Arguments.JVM...)
	source.InheritsFrom = ""
}
