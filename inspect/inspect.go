// Package inspect loads named numeric tuples from YAML or JSON documents
// and reports on them.
package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"facette.io/natsort"
	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/logger"
	"github.com/amp-labs/amp-tuple/tuple"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type OutputType string

const (
	OutputTypeUndefined OutputType = ""
	OutputTypeText      OutputType = "text"
	OutputTypeJSON      OutputType = "json"
	OutputTypeYAML      OutputType = "yaml"
)

var OutputTypes = []OutputType{OutputTypeText, OutputTypeJSON, OutputTypeYAML} //nolint:gochecknoglobals

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNegativeMargin    = errors.New("margin must not be negative")
)

// Document maps tuple names to their components.
type Document map[string]*tuple.TupN[float64]

// Load decodes a document. JSON and YAML are accepted; text is output only.
func Load(r io.Reader, format OutputType) (Document, error) {
	doc := Document{}

	switch format {
	case OutputTypeJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode json document: %w", err)
		}
	case OutputTypeYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode yaml document: %w", err)
		}
	case OutputTypeText, OutputTypeUndefined:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return doc, nil
}

// FormatForPath picks JSON for .json files and YAML for everything else.
func FormatForPath(path string) OutputType {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return OutputTypeJSON
	}

	return OutputTypeYAML
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return Load(f, FormatForPath(path))
}

// Encode writes doc to w as JSON or YAML.
func Encode(w io.Writer, doc Document, format OutputType) error {
	switch format {
	case OutputTypeJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json document: %w", err)
		}
	case OutputTypeYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml document: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml document: %w", err)
		}
	case OutputTypeText, OutputTypeUndefined:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return nil
}

// SaveFile writes doc to path, picking the format from the extension.
func SaveFile(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, doc, FormatForPath(path)); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

type Options struct {
	// Margin is the inclusive tolerance used for the WithinMargin column.
	Margin float64

	// Workers caps concurrent analysis. Zero means GOMAXPROCS.
	Workers int

	// Hash fingerprints each tuple for the Hash column. Nil means hashing.Xxh3.
	Hash hashing.HashFunc
}

func (o Options) hash() hashing.HashFunc {
	if o.Hash == nil {
		return hashing.Xxh3
	}

	return o.Hash
}

// Report describes one named tuple.
type Report struct {
	Name         string               `json:"name"         yaml:"name"`
	Arity        int                  `json:"arity"        yaml:"arity"`
	Components   *tuple.TupN[float64] `json:"components"   yaml:"components"`
	Text         string               `json:"text"         yaml:"text"`
	Zero         bool                 `json:"zero"         yaml:"zero"`
	WithinMargin bool                 `json:"withinMargin" yaml:"withinMargin"`
	Hash         string               `json:"hash"         yaml:"hash"`
}

// Analyze builds one report per entry of doc, ordered naturally by name
// ("t2" sorts before "t10"). Entries are analyzed on a pool of
// opts.Workers goroutines.
func Analyze(ctx context.Context, doc Document, opts Options) ([]Report, error) {
	if !tuple.WithinMargin(0, opts.Margin) {
		return nil, fmt.Errorf("%w: %v", ErrNegativeMargin, opts.Margin)
	}

	names := lo.Keys(doc)
	natsort.Sort(names)

	if len(names) == 0 {
		return []Report{}, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pool := pond.NewResultPool[Report](workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for _, name := range names {
		components := doc[name]
		if components == nil {
			components = tuple.NewTupN[float64]()
		}

		group.SubmitErr(func() (Report, error) {
			report, err := analyzeOne(name, components, opts)
			if err != nil {
				return Report{}, err
			}

			logger.Get(ctx).Debug("Analyzed tuple", "name", name, "tuple", report.Text, "zero", report.Zero)

			return report, nil
		})
	}

	reports, err := group.Wait()
	if err != nil {
		return nil, err
	}

	return reports, nil
}

// AnalyzeOne reports on a single tuple.
func AnalyzeOne(name string, components tuple.Readable[float64], opts Options) (Report, error) {
	if !tuple.WithinMargin(0, opts.Margin) {
		return Report{}, fmt.Errorf("%w: %v", ErrNegativeMargin, opts.Margin)
	}

	return analyzeOne(name, tuple.NewTupNFrom(components), opts)
}

func analyzeOne(name string, components *tuple.TupN[float64], opts Options) (Report, error) {
	sum, err := opts.hash()(components)
	if err != nil {
		return Report{}, fmt.Errorf("failed to hash %s: %w", name, err)
	}

	return Report{
		Name:         name,
		Arity:        components.Len(),
		Components:   components,
		Text:         components.String(),
		Zero:         components.IsZero(),
		WithinMargin: tuple.IsZeroWithMargin[float64](components, opts.Margin),
		Hash:         sum,
	}, nil
}

// Render writes reports to w in the requested format.
func Render(output OutputType, w io.Writer, reports []Report) error {
	var (
		data []byte
		err  error
	)

	switch output {
	case OutputTypeText, OutputTypeUndefined:
		data = []byte(RenderTable(reportHeaders, lo.Map(reports, func(r Report, _ int) []string {
			return r.row()
		})))
	case OutputTypeYAML:
		data, err = yaml.Marshal(reports)
		if err != nil {
			return fmt.Errorf("failed to marshal reports as yaml: %w", err)
		}
	case OutputTypeJSON:
		data, err = json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal reports as json: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, output)
	}

	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}

	return nil
}

// ParseOutputType validates a user-supplied output type.
func ParseOutputType(s string) (OutputType, error) {
	out := OutputType(strings.ToLower(strings.TrimSpace(s)))
	if out == OutputTypeUndefined {
		return OutputTypeText, nil
	}

	if !slices.Contains(OutputTypes, out) {
		return OutputTypeUndefined, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}

	return out, nil
}
