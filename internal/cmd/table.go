package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/ps2matrix/ps2matrix/macro"
	"github.com/ps2matrix/ps2matrix/scancode"
)

type Table struct {
	Format string `help:"Output format" enum:"text,json,yaml,toml" default:"text"`

	Out io.Writer `kong:"-" json:"-" yaml:"-" toml:"-"`
}

// tableDoc is the document written for the structured formats.
type tableDoc struct {
	Keys   []scancode.Entry `json:"keys" yaml:"keys" toml:"keys"`
	Macros []macroRow       `json:"macros" yaml:"macros" toml:"macros"`
}

type macroRow struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Trigger     string   `json:"trigger" yaml:"trigger" toml:"trigger"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Keys        []string `json:"keys" yaml:"keys" toml:"keys"`
}

func macroRows() []macroRow {
	var out []macroRow
	for _, m := range macro.Builtins() {
		row := macroRow{Name: m.Name, Trigger: scancode.Name(m.Trigger, false), Description: m.Description}
		for _, c := range m.Seq {
			if c == scancode.None {
				break
			}
			row.Keys = append(row.Keys, scancode.Name(c, false))
		}
		out = append(out, row)
	}
	return out
}

// Run is called by Kong when the table command is executed.
func (t *Table) Run() error {
	out := stdout(t.Out)
	doc := tableDoc{Keys: scancode.Entries(), Macros: macroRows()}

	var data []byte
	var err error
	switch normalizeFormat(t.Format) {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	default:
		return writeTextTable(out, doc)
	}
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func writeTextTable(out io.Writer, doc tableDoc) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tKEY\tTARGET\tPACKED")
	for _, e := range doc.Keys {
		code := fmt.Sprintf("%02X", e.Code)
		if e.Extended {
			code = "E0 " + code
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%04X\n", code, e.Name, e.Target, e.Packed)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "TRIGGER\tMACRO\tTYPES")
	for _, m := range doc.Macros {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", m.Trigger, m.Name, m.Description)
	}
	return w.Flush()
}
