package directory

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MarkoPoloResearchLab/matchledger/internal/atomicfile"
	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"gopkg.in/yaml.v3"
)

const (
	messageColumnID      = "ID"
	messageColumnMessage = "MESSAGE"
	entryFieldMessage    = "message"
	documentFieldEntries = "entries"
	directoryPermissions = 0o644
)

var ErrMissingColumn = errors.New("messages csv is missing a required column")

// ApplyResult summarizes a message import.
type ApplyResult struct {
	Applied int
	Skipped int
	Unknown int
}

// ApplyMessages merges the MESSAGE column of a CSV (header row with ID and
// MESSAGE) into the directory file at path and rewrites it atomically. Rows
// with an empty id or message are skipped; ids absent from the directory are
// counted as unknown. Fields other than message are preserved.
func ApplyMessages(path string, messages io.Reader) (ApplyResult, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return ApplyResult{}, fmt.Errorf("read match directory %s: %w", path, err)
	}
	format := FormatForPath(path)
	root, err := decodeGeneric(payload, format)
	if err != nil {
		return ApplyResult{}, err
	}
	entries, _ := root[documentFieldEntries].(map[string]any)
	index := make(map[string]map[string]any, len(entries))
	for key, value := range entries {
		if entry, ok := value.(map[string]any); ok {
			index[ledger.NormalizeID(key)] = entry
		}
	}

	rows, err := readMessageRows(messages)
	if err != nil {
		return ApplyResult{}, err
	}
	var result ApplyResult
	for _, row := range rows {
		id := ledger.NormalizeID(row.id)
		message := strings.TrimSpace(row.message)
		if id == "" || message == "" {
			result.Skipped++
			continue
		}
		entry, exists := index[id]
		if !exists {
			result.Unknown++
			continue
		}
		entry[entryFieldMessage] = message
		result.Applied++
	}

	encoded, err := encodeGeneric(root, format)
	if err != nil {
		return ApplyResult{}, err
	}
	if err := atomicfile.Write(path, encoded, directoryPermissions); err != nil {
		return ApplyResult{}, fmt.Errorf("write match directory %s: %w", path, err)
	}
	return result, nil
}

type messageRow struct {
	id      string
	message string
}

func readMessageRows(source io.Reader) ([]messageRow, error) {
	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read messages header: %w", err)
	}
	idColumn, messageColumn := -1, -1
	for position, name := range header {
		switch strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case messageColumnID:
			idColumn = position
		case messageColumnMessage:
			messageColumn = position
		}
	}
	if idColumn < 0 || messageColumn < 0 {
		return nil, fmt.Errorf("%w: need %s and %s", ErrMissingColumn, messageColumnID, messageColumnMessage)
	}

	var rows []messageRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read messages row: %w", err)
		}
		rows = append(rows, messageRow{
			id:      fieldAt(record, idColumn),
			message: fieldAt(record, messageColumn),
		})
	}
	return rows, nil
}

func fieldAt(record []string, position int) string {
	if position >= len(record) {
		return ""
	}
	return record[position]
}

func decodeGeneric(payload []byte, format Format) (map[string]any, error) {
	root := make(map[string]any)
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(payload))
		decoder.UseNumber()
		if err := decoder.Decode(&root); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(payload, &root); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return root, nil
}

func encodeGeneric(root map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buffer bytes.Buffer
		encoder := json.NewEncoder(&buffer)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(root); err != nil {
			return nil, fmt.Errorf("encode match directory: %w", err)
		}
		return buffer.Bytes(), nil
	case FormatYAML:
		encoded, err := yaml.Marshal(root)
		if err != nil {
			return nil, fmt.Errorf("encode match directory: %w", err)
		}
		return encoded, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
