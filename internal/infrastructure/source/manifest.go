package source

import (
	"os"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"

	"github.com/riskibarqy/cricket-insights/internal/domain/rawdata"
)

// Entry maps one source file to its domain and format label.
type Entry struct {
	Domain rawdata.Domain `yaml:"domain"`
	Label  string         `yaml:"label"`
	Path   string         `yaml:"path"`
}

// Manifest lists the source files of a run. Entry order is processing order
// within a domain.
type Manifest struct {
	Sources []Entry `yaml:"sources"`
}

// DefaultManifest is the stock layout: ODI, t20 and test files under Batting,
// Bowling and Fielding directories.
func DefaultManifest() Manifest {
	return Manifest{Sources: []Entry{
		{Domain: rawdata.DomainBatting, Label: "ODI data", Path: "Batting/ODI data.csv"},
		{Domain: rawdata.DomainBatting, Label: "t20", Path: "Batting/t20.csv"},
		{Domain: rawdata.DomainBatting, Label: "test", Path: "Batting/test.csv"},
		{Domain: rawdata.DomainBowling, Label: "Bowling_ODI", Path: "Bowling/Bowling_ODI.csv"},
		{Domain: rawdata.DomainBowling, Label: "Bowling_t20", Path: "Bowling/Bowling_t20.csv"},
		{Domain: rawdata.DomainBowling, Label: "Bowling_test", Path: "Bowling/Bowling_test.csv"},
		{Domain: rawdata.DomainFielding, Label: "Fielding_ODI", Path: "Fielding/Fielding_ODI.csv"},
		{Domain: rawdata.DomainFielding, Label: "Fielding_t20", Path: "Fielding/Fielding_t20.csv"},
		{Domain: rawdata.DomainFielding, Label: "Fielding_test", Path: "Fielding/Fielding_test.csv"},
	}}
}

// LoadManifest reads a YAML manifest. An empty path returns DefaultManifest.
func LoadManifest(path string) (Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultManifest(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, crerr.Wrapf(err, "read source manifest %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, crerr.Wrapf(err, "parse source manifest %s", path)
	}
	normalized, err := m.Normalize()
	if err != nil {
		return Manifest{}, crerr.Wrapf(err, "validate source manifest %s", path)
	}
	return normalized, nil
}

// Validate checks every entry has a known domain, a label that names a format,
// and a path. A (domain, label) pair may appear once.
func (m Manifest) Validate() error {
	_, err := m.Normalize()
	return err
}

// Normalize validates the manifest and returns a copy whose domains are in
// canonical form, so "Batting" and "batting" select the same merge pass.
func (m Manifest) Normalize() (Manifest, error) {
	if len(m.Sources) == 0 {
		return Manifest{}, crerr.New("manifest has no sources")
	}

	out := Manifest{Sources: make([]Entry, 0, len(m.Sources))}
	seen := make(map[string]struct{}, len(m.Sources))
	for i, entry := range m.Sources {
		domain, err := rawdata.ParseDomain(string(entry.Domain))
		if err != nil {
			return Manifest{}, crerr.Wrapf(err, "source %d", i)
		}
		entry.Domain = domain
		entry.Label = strings.TrimSpace(entry.Label)
		entry.Path = strings.TrimSpace(entry.Path)

		if _, err := rawdata.FormatFromLabel(entry.Label); err != nil {
			return Manifest{}, crerr.Wrapf(err, "source %d", i)
		}
		if entry.Path == "" {
			return Manifest{}, crerr.Newf("source %d (%s %s): path is required", i, entry.Domain, entry.Label)
		}

		key := string(entry.Domain) + "|" + entry.Label
		if _, dup := seen[key]; dup {
			return Manifest{}, crerr.Newf("source %d: duplicate %s label %q", i, entry.Domain, entry.Label)
		}
		seen[key] = struct{}{}
		out.Sources = append(out.Sources, entry)
	}
	return out, nil
}
