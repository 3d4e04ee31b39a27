package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ps2matrix/ps2matrix/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

var configurable = map[string]reflect.Type{
	"run":    reflect.TypeOf(Run{}),
	"replay": reflect.TypeOf(Replay{}),
	"type":   reflect.TypeOf(Type{}),
	"macro":  reflect.TypeOf(Macro{}),
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"run,replay,type,macro"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// Run writes the defaults of the chosen command as a config file.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	t, ok := configurable[c.Command]
	if !ok {
		return fmt.Errorf("unknown command %q; expected run, replay, type or macro", c.Command)
	}
	root := buildMapFromStruct(t)

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + format
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(root, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// normalizeFormat maps a format flag to json, yaml or toml, or "" when
// the format is not one of them.
func normalizeFormat(f string) string {
	switch f = strings.ToLower(f); f {
	case "json", "toml":
		return f
	case "yml", "yaml":
		return "yaml"
	}
	return ""
}

// templateKey is the config file key of a flag field: the field name with
// a lower-case first letter.
func templateKey(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[n:]
}

// buildMapFromStruct walks a command struct the way kong does: embedded
// groups nest under their prefix, positional arguments and kong:"-" fields
// are skipped, and every flag contributes its default.
func buildMapFromStruct(t reflect.Type) map[string]any {
	out := map[string]any{}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || len(f.Index) > 1 || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("embed"); ok {
			sub := buildMapFromStruct(f.Type)
			name := strings.TrimSuffix(f.Tag.Get("prefix"), ".")
			if name == "" {
				maps.Copy(out, sub)
			} else {
				out[name] = sub
			}
			continue
		}
		if v, ok := flagDefault(f.Type, f.Tag.Get("default")); ok {
			out[templateKey(f.Name)] = v
		}
	}
	return out
}

var durationType = reflect.TypeOf(time.Duration(0))

// flagDefault converts a default tag into the value written to the
// template. Durations stay in their string form.
func flagDefault(t reflect.Type, def string) (any, bool) {
	switch {
	case t == durationType:
		if def == "" {
			def = "0s"
		}
		return def, true
	case t.Kind() == reflect.String:
		return def, true
	case t.Kind() == reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b, true
	case t.Kind() >= reflect.Uint && t.Kind() <= reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n, true
	}
	return nil, false
}
