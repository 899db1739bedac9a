package minecraft

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/minepkg/mclaunch/internals/placeholder"
	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned for argument entries that are neither a string nor a rule object
var ErrInvalidArgument = errors.New("invalid argument entry")

// legacyJVMArguments are used for manifests without "arguments.jvm"
var legacyJVMArguments = []string{
	"-Djava.library.path=${natives_directory}",
	"-cp",
	"${classpath}",
}

type argument struct {
	Rules []Rule      `json:"rules"`
	Value stringSlice `json:"value"`
}

func parseArgument(raw json.RawMessage) (*argument, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrInvalidArgument
	}

	switch raw[0] {
	case '"':
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		return &argument{Value: stringSlice{value}}, nil
	case '{':
		arg := &argument{}
		if err := json.Unmarshal(raw, arg); err != nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "%s: %s", raw, err)
		}
		if len(arg.Value) == 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "%s has no value", raw)
		}
		return arg, nil
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "%s", raw)
	}
}

// expandArguments returns every value of entries allowed on p with its variables replaced
func expandArguments(entries []json.RawMessage, p Platform, s placeholder.Strategy) ([]string, error) {
	expanded := make([]string, 0, len(entries))
	for _, raw := range entries {
		arg, err := parseArgument(raw)
		if err != nil {
			return nil, err
		}
		if !allowed(arg.Rules, p) {
			continue
		}
		for _, template := range arg.Value {
			value, err := placeholder.Apply(template, s)
			if err != nil {
				return nil, err
			}
			expanded = append(expanded, value)
		}
	}
	return expanded, nil
}

func expandTemplates(templates []string, s placeholder.Strategy) ([]string, error) {
	expanded := make([]string, 0, len(templates))
	for _, template := range templates {
		value, err := placeholder.Apply(template, s)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, value)
	}
	return expanded, nil
}

// GameArguments returns the expanded game arguments in declared order
func (v *Version) GameArguments(s placeholder.Strategy) ([]string, error) {
	m := v.manifest
	if len(m.Arguments.Game) != 0 {
		return expandArguments(m.Arguments.Game, v.platform, s)
	}
	// easy minecraft versions before 1.13
	return expandTemplates(strings.Fields(m.MinecraftArguments), s)
}

// JVMArguments returns the expanded jvm arguments in declared order
func (v *Version) JVMArguments(s placeholder.Strategy) ([]string, error) {
	m := v.manifest
	if len(m.Arguments.JVM) != 0 {
		return expandArguments(m.Arguments.JVM, v.platform, s)
	}
	return expandTemplates(legacyJVMArguments, s)
}
