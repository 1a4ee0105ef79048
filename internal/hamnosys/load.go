package hamnosys

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/signphon/internal/domain"
)

//go:embed data/hamnosys.tsv
var defaultTSV []byte

// errSkipLine signals a header, comment or blank line.
var errSkipLine = errors.New("skip line")

var defaultTable = sync.OnceValues(func() (*Table, error) {
	return ReadTSV(bytes.NewReader(defaultTSV))
})

// Default returns the HamNoSys 4 table compiled into the binary.
func Default() (*Table, error) {
	return defaultTable()
}

// LoadFile reads a table from disk. Files ending in .yaml or .yml are read as
// YAML, everything else as tab-separated values. An empty path returns the
// default table.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open glyph table: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return ReadTSV(f)
	}
}

// ReadTSV reads lines of "Unicode<TAB>Name<TAB>Roles". Unicode is a hex code
// point, Roles a comma-separated list that may be empty. A header line
// starting with "Unicode" and lines starting with '#' are skipped.
func ReadTSV(r io.Reader) (*Table, error) {
	var glyphs []Glyph

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		g, err := parseTSVLine(scanner.Text())
		if err == errSkipLine {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("glyph table line %d: %w", lineNo, err)
		}
		glyphs = append(glyphs, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	return NewTable(glyphs)
}

func parseTSVLine(line string) (Glyph, error) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "Unicode\t") {
		return Glyph{}, errSkipLine
	}

	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return Glyph{}, domain.NewValidationError("line", "expected at least 2 tab-separated fields")
	}

	cp, err := parseCodePoint(fields[0])
	if err != nil {
		return Glyph{}, err
	}

	g := Glyph{Rune: cp, Name: strings.TrimSpace(fields[1])}
	if len(fields) > 2 {
		g.Roles = parseRoles(fields[2])
	}
	return g, nil
}

func parseCodePoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, domain.NewValidationError("unicode", fmt.Sprintf("invalid code point %q", s))
	}
	return rune(v), nil
}

func parseRoles(s string) []Role {
	var roles []Role
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			roles = append(roles, Role(part))
		}
	}
	return roles
}

type yamlTable struct {
	Glyphs []yamlGlyph `yaml:"glyphs"`
}

type yamlGlyph struct {
	Unicode string   `yaml:"unicode"`
	Name    string   `yaml:"name"`
	Roles   []string `yaml:"roles"`
}

// ReadYAML reads a table of the form:
//
//	glyphs:
//	  - unicode: E000
//	    name: hamfist
//	    roles: [handshape]
func ReadYAML(r io.Reader) (*Table, error) {
	var doc yamlTable
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode glyph table: %w", err)
	}

	glyphs := make([]Glyph, 0, len(doc.Glyphs))
	for i, yg := range doc.Glyphs {
		cp, err := parseCodePoint(yg.Unicode)
		if err != nil {
			return nil, fmt.Errorf("glyph table entry %d: %w", i, err)
		}
		g := Glyph{Rune: cp, Name: strings.TrimSpace(yg.Name)}
		for _, role := range yg.Roles {
			g.Roles = append(g.Roles, Role(strings.TrimSpace(role)))
		}
		glyphs = append(glyphs, g)
	}

	return NewTable(glyphs)
}
