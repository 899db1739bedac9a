package minecraft

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// stringSlice is a slice of strings that can be unmarshalled from a string or a []string
type stringSlice []string

func (w *stringSlice) String() string {
	return strings.Join(*w, " ")
}

// UnmarshalJSON is needed because argument sometimes is a string
func (w *stringSlice) UnmarshalJSON(data []byte) (err error) {
	if len(data) == 0 {
		return errors.New("empty argument value")
	}

	switch data[0] {
	case '[':
		var arg []string
		if err := json.Unmarshal(data, &arg); err != nil {
			return err
		}
		*w = arg
		return nil
	case '"':
		var arg string
		if err := json.Unmarshal(data, &arg); err != nil {
			return err
		}
		*w = []string{arg}
		return nil
	default:
		return errors.Errorf("argument value has to be a string or a list of strings, got %s", data)
	}
}
