package directory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format names the encoding of a directory file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported directory format")
	ErrMalformedFile     = errors.New("malformed directory file")
)

// Directory is an immutable, in-memory match directory keyed by normalized id.
type Directory struct {
	entries map[string]ledger.MatchEntry
}

type document struct {
	Entries map[string]ledger.MatchEntry `json:"entries" yaml:"entries"`
}

// New builds a Directory from entries. Entry ids are normalized; later
// duplicates replace earlier ones.
func New(entries []ledger.MatchEntry) *Directory {
	directory := &Directory{entries: make(map[string]ledger.MatchEntry, len(entries))}
	for _, entry := range entries {
		directory.add("", entry)
	}
	return directory
}

// FormatForPath picks the encoding from the file extension; anything other
// than .yaml/.yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the directory file at path. A missing file yields an empty
// directory and a warning.
func Load(path string, logger *zap.Logger) (*Directory, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	payload, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("match directory not found, starting empty", zap.String("path", path))
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read match directory %s: %w", path, err)
	}
	directory, err := Parse(payload, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("match directory loaded", zap.String("path", path), zap.Int("entries", directory.Len()))
	return directory, nil
}

// Parse decodes a `{"entries": {id: entry}}` document.
func Parse(payload []byte, format Format) (*Directory, error) {
	var decoded document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(payload, &decoded); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(payload, &decoded); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	directory := &Directory{entries: make(map[string]ledger.MatchEntry, len(decoded.Entries))}
	for key, entry := range decoded.Entries {
		directory.add(key, entry)
	}
	return directory, nil
}

func (directory *Directory) add(key string, entry ledger.MatchEntry) {
	id := ledger.NormalizeID(key)
	if id == "" {
		id = ledger.NormalizeID(entry.ID)
	}
	if id == "" {
		return
	}
	entry.ID = id
	directory.entries[id] = entry
}

// Exists reports whether id is present.
func (directory *Directory) Exists(id ledger.MatchID) bool {
	_, exists := directory.entries[id.String()]
	return exists
}

// Get returns the entry for id.
func (directory *Directory) Get(id ledger.MatchID) (ledger.MatchEntry, bool) {
	entry, exists := directory.entries[id.String()]
	return entry, exists
}

// Len returns the number of entries.
func (directory *Directory) Len() int {
	return len(directory.entries)
}
