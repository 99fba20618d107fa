package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tomlTableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg as TOML. Keys keep struct order and
// tables are sorted by name so the file diffs cleanly between versions.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(sortTOMLSections(buf.String())), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

type tomlTable struct {
	name  string
	lines []string
}

// sortTOMLSections reorders the tables of a TOML document by name.
// Top-level keys stay first. Indented sub-table headers are recognized.
func sortTOMLSections(content string) string {
	var preamble []string
	var tables []tomlTable

	for _, line := range strings.Split(content, "\n") {
		if match := tomlTableHeader.FindStringSubmatch(line); match != nil {
			tables = append(tables, tomlTable{name: match[1], lines: []string{line}})
			continue
		}
		if len(tables) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &tables[len(tables)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].name < tables[j].name
	})

	var out strings.Builder
	writeBlock := func(lines []string) {
		block := strings.TrimRight(strings.Join(lines, "\n"), "\n")
		if block == "" {
			return
		}
		if out.Len() > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(block)
	}

	writeBlock(preamble)
	for _, t := range tables {
		writeBlock(t.lines)
	}
	if out.Len() == 0 {
		return ""
	}
	out.WriteString("\n")
	return out.String()
}
