// Package placeholder replaces ${name} variables in launch argument templates.
package placeholder

import (
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "${"
	endTag   = "}"
)

// ErrMalformed is returned when a template contains a "${" without a closing "}"
var ErrMalformed = errors.New("malformed template")

// Strategy resolves a placeholder name to its value
type Strategy interface {
	Resolve(name string) string
}

// Map is a Strategy backed by a plain map. Unknown names resolve to an empty string
type Map map[string]string

// Resolve returns the value for name or "" if it is not set
func (m Map) Resolve(name string) string {
	v, ok := m[name]
	if !ok {
		log.Printf("[INFO] unknown placeholder ${%s}", name)
	}
	return v
}

// Func adapts a function to the Strategy interface
type Func func(name string) string

// Resolve calls f(name)
func (f Func) Resolve(name string) string {
	return f(name)
}

// Apply replaces every ${name} in template with the value returned by s
func Apply(template string, s Strategy) (string, error) {
	t, err := fasttemplate.NewTemplate(template, startTag, endTag)
	if err != nil {
		return "", errors.Wrapf(ErrMalformed, "%q", template)
	}

	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		return w.Write([]byte(s.Resolve(tag)))
	}), nil
}
