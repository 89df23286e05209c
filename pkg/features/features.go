package features

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/utplsql/utplsql-go/pkg/version"
)

//go:embed features.yaml
var tableYAML []byte

// Feature is an optional framework capability and its minimum version.
type Feature struct {
	Name       string
	MinVersion version.Version
}

// IsAvailableFor reports whether the feature is provided by framework
// version v. It fails with version.ErrUnsetMajor if v has no major component.
func (f Feature) IsAvailableFor(v version.Version) (bool, error) {
	ok, err := v.AtLeast(f.MinVersion)
	if err != nil {
		return false, fmt.Errorf("feature %s: %w", f.Name, err)
	}
	return ok, nil
}

// String returns the feature name and its minimum version.
func (f Feature) String() string {
	return f.Name + "@" + f.MinVersion.String()
}

// Named features shipped with the framework.
var (
	FailOnError                 = mustLookup("FAIL_ON_ERROR")
	FrameworkCompatibilityCheck = mustLookup("FRAMEWORK_COMPATIBILITY_CHECK")
	CustomReporters             = mustLookup("CUSTOM_REPORTERS")
	ClientCharacterSet          = mustLookup("CLIENT_CHARACTER_SET")
	RandomExecutionOrder        = mustLookup("RANDOM_EXECUTION_ORDER")
	Tags                        = mustLookup("TAGS")
)

// ---------------------------------------------------------------------------
// Table
// ---------------------------------------------------------------------------

type tableDoc struct {
	Features []struct {
		Name  string `yaml:"name"`
		Since string `yaml:"since"`
	} `yaml:"features"`
}

var (
	loadOnce sync.Once
	table    []Feature
	byName   map[string]Feature
	loadErr  error
)

func load() {
	var doc tableDoc
	if err := yaml.Unmarshal(tableYAML, &doc); err != nil {
		loadErr = fmt.Errorf("parsing feature table: %w", err)
		return
	}

	byName = make(map[string]Feature, len(doc.Features))
	for _, e := range doc.Features {
		min := version.Parse(e.Since)
		if e.Name == "" || !min.IsValid() {
			loadErr = fmt.Errorf("feature table entry %q: invalid version %q", e.Name, e.Since)
			return
		}
		if _, dup := byName[e.Name]; dup {
			loadErr = fmt.Errorf("feature table entry %q: duplicate", e.Name)
			return
		}
		f := Feature{Name: e.Name, MinVersion: min}
		table = append(table, f)
		byName[e.Name] = f
	}
}

func mustLookup(name string) Feature {
	f, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("feature %s missing from embedded table: %v", name, loadErr))
	}
	return f
}

// Lookup finds a feature by name.
func Lookup(name string) (Feature, bool) {
	loadOnce.Do(load)
	if loadErr != nil {
		return Feature{}, false
	}
	f, ok := byName[name]
	return f, ok
}

// All returns every feature in table order.
func All() []Feature {
	loadOnce.Do(load)
	out := make([]Feature, len(table))
	copy(out, table)
	return out
}

// Available returns the names of all features provided by v, sorted.
func Available(v version.Version) ([]string, error) {
	var out []string
	for _, f := range All() {
		ok, err := f.IsAvailableFor(v)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, f.Name)
		}
	}
	sort.Strings(out)
	return out, nil
}
