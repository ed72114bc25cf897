// Package manifest reads recipe manifests: small INI-style files made of
// [section] headers and key = value lines.
//
//	# fish sticks
//	[package]
//	name = fish-sticks
//	version = 3
//
//	[recipe]
//	servings = 4
//	cook-time = 12m
//	oven = true
//
// Parse failures are ParseError values that carry their own context label;
// I/O failures from Load are wrapped in errwhile envelopes.
package manifest

import (
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	errwhile "github.com/xgx-io/xgx-errwhile"
)

// Manifest is a decoded manifest.
type Manifest struct {
	Name     string
	Version  int
	Servings int
	CookTime time.Duration
	Oven     bool
}

type field struct {
	required bool
	set      func(m *Manifest, v string) error
}

var schema = map[string]map[string]field{
	"package": {
		"name": {required: true, set: func(m *Manifest, v string) error {
			m.Name = v
			return nil
		}},
		"version": {required: true, set: func(m *Manifest, v string) (err error) {
			m.Version, err = strconv.Atoi(v)
			return err
		}},
	},
	"recipe": {
		"servings": {set: func(m *Manifest, v string) (err error) {
			m.Servings, err = strconv.Atoi(v)
			return err
		}},
		"cook-time": {set: func(m *Manifest, v string) (err error) {
			m.CookTime, err = time.ParseDuration(v)
			return err
		}},
		"oven": {set: func(m *Manifest, v string) (err error) {
			m.Oven, err = strconv.ParseBool(v)
			return err
		}},
	},
}

// Load reads and parses the manifest at path in fsys.
//
// I/O failures enter the context chain with a stack captured here, so a
// verbose rendering points at the read that failed. Parse failures carry line
// numbers instead and are wrapped without one.
func Load(fsys fs.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errwhile.ToRootCauseWithStack[string](err).WithContext("reading manifest")
	}
	m, perr := Parse(data)
	if perr != nil {
		return nil, errwhile.Wrap(perr, "parsing "+path)
	}
	return m, nil
}

// Parse decodes a manifest.
func Parse(data []byte) (*Manifest, ParseError) {
	m := &Manifest{}
	seen := map[string]map[string]bool{}
	section := ""

	for i, raw := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)

		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "["):
			name, err := parseHeader(lineNo, line)
			if err != nil {
				return nil, errwhile.While(err, "reading section header")
			}
			section = name
			if seen[section] == nil {
				seen[section] = map[string]bool{}
			}
		default:
			err := assign(m, section, lineNo, line)
			if err != nil {
				return nil, errwhile.WhileFunc(err, func() string {
					return "reading section [" + section + "]"
				})
			}
			seen[section][keyOf(line)] = true
		}
	}

	return errwhile.InContextOf("validating manifest", func() (*Manifest, ParseError) {
		if err := checkRequired(seen); err != nil {
			return nil, err
		}
		return m, nil
	})
}

func parseHeader(lineNo int, line string) (string, ParseError) {
	if !strings.HasSuffix(line, "]") {
		return "", &SyntaxError{LineNo: lineNo, Text: line}
	}
	name := strings.TrimSpace(line[1 : len(line)-1])
	if _, ok := schema[name]; !ok {
		return "", &UnknownKeyError{LineNo: lineNo, Section: name}
	}
	return name, nil
}

func assign(m *Manifest, section string, lineNo int, line string) ParseError {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return &SyntaxError{LineNo: lineNo, Text: line}
	}
	key = strings.TrimSpace(key)
	value = strings.Trim(strings.TrimSpace(value), `"`)

	f, ok := schema[section][key]
	if !ok {
		return &UnknownKeyError{LineNo: lineNo, Section: section, Key: key}
	}
	if err := f.set(m, value); err != nil {
		return &ValueError{LineNo: lineNo, Key: key, Value: value, Err: err}
	}
	return nil
}

func keyOf(line string) string {
	key, _, _ := strings.Cut(line, "=")
	return strings.TrimSpace(key)
}

// checkRequired reports the first missing required key, sections and keys
// in sorted order so the result is deterministic. Parse labels the result.
func checkRequired(seen map[string]map[string]bool) ParseError {
	sections := make([]string, 0, len(schema))
	for s := range schema {
		sections = append(sections, s)
	}
	sort.Strings(sections)

	for _, s := range sections {
		keys := make([]string, 0, len(schema[s]))
		for k := range schema[s] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if schema[s][k].required && !seen[s][k] {
				return &MissingKeyError{Section: s, Key: k}
			}
		}
	}
	return nil
}
