package prefs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SchemaVersion is the current persistence schema version.
const SchemaVersion = 1

// Record is one durable entry for one preference key. Records are
// serialized independently so corruption or absence of one key never
// invalidates the others.
type Record struct {
	Key       string `json:"key"`   // namespaced, e.g. "readable:fontSize"
	Value     string `json:"value"` // serialized preference value
	Rev       string `json:"rev"`   // ULID stamped per write
	WrittenAt int64  `json:"written_at"`
}

// NewRecord builds a durable record for k with a fresh revision.
func NewRecord(k Key, value string) Record {
	return Record{
		Key:       k.StorageKey(),
		Value:     value,
		Rev:       ulid.Make().String(),
		WrittenAt: time.Now().Unix(),
	}
}

// Persistence defines the interface for durable preference storage.
// Implementations are best-effort and untrusted: callers must treat
// every failure as "keep working in memory".
type Persistence interface {
	// Load reads all records from storage in write order. Malformed
	// entries are skipped, not surfaced.
	Load() ([]Record, error)

	// Write appends one record to storage.
	Write(r Record) error

	// Rewrite replaces all stored records (used for compaction).
	Rewrite(rs []Record) error

	// Close releases file handles and resources.
	Close() error
}

// schemaHeader is the first line of the JSONL file.
type schemaHeader struct {
	ReadableSchemaVersion int   `json:"readable_schema_version"`
	CreatedAt             int64 `json:"created_at"`
}

// JSONLPersistence implements Persistence using an append-only JSONL
// file. The last record per key wins on load.
type JSONLPersistence struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	closed bool
}

// NewJSONLPersistence opens or creates the records file at path.
func NewJSONLPersistence(path string) (*JSONLPersistence, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	p := &JSONLPersistence{
		path: path,
		file: file,
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	if info.Size() == 0 {
		if err := p.writeHeader(); err != nil {
			file.Close()
			return nil, err
		}
	}

	return p, nil
}

// Path returns the records file path.
func (p *JSONLPersistence) Path() string {
	return p.path
}

func (p *JSONLPersistence) writeHeader() error {
	header := schemaHeader{
		ReadableSchemaVersion: SchemaVersion,
		CreatedAt:             time.Now().Unix(),
	}

	data, err := json.Marshal(header)
	if err != nil {
		return err
	}

	_, err = p.file.Write(append(data, '\n'))
	return err
}

// Load reads all records from storage. Malformed lines and unknown keys
// are skipped so one corrupt record never invalidates the rest.
func (p *JSONLPersistence) Load() ([]Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.file == nil {
		return nil, ErrPersistenceClosed
	}

	if _, err := p.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek %s: %w", p.path, err)
	}

	// No size cap on lines: Write accepts inputText records of any
	// length, so Load must read back whatever Write produced.
	var records []Record
	reader := bufio.NewReader(p.file)

	lineNum := 0
	for {
		line, readErr := reader.ReadBytes('\n')
		line = bytes.TrimRight(line, "\r\n")

		if len(line) > 0 {
			lineNum++
			ok := true

			// First line is the header
			if lineNum == 1 {
				var header schemaHeader
				if err := json.Unmarshal(line, &header); err == nil && header.ReadableSchemaVersion > 0 {
					if header.ReadableSchemaVersion > SchemaVersion {
						return nil, fmt.Errorf("unsupported schema version %d (max: %d)",
							header.ReadableSchemaVersion, SchemaVersion)
					}
					ok = false
				}
				// Not a header; try it as a record.
			}

			if ok {
				var r Record
				// Skip malformed lines
				if err := json.Unmarshal(line, &r); err == nil && r.Key != "" {
					records = append(records, r)
				}
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return records, fmt.Errorf("error reading file: %w", readErr)
		}
	}

	// Seek back to end for appending
	if _, err := p.file.Seek(0, io.SeekEnd); err != nil {
		return records, err
	}

	return records, nil
}

// Write appends one record to storage.
func (p *JSONLPersistence) Write(r Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.file == nil {
		return ErrPersistenceClosed
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	if _, err := p.file.Write(append(data, '\n')); err != nil {
		return err
	}

	return p.file.Sync()
}

// Rewrite replaces the records file with exactly rs (used for
// compaction on close).
func (p *JSONLPersistence) Rewrite(rs []Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPersistenceClosed
	}

	if p.file != nil {
		if err := p.file.Close(); err != nil {
			return err
		}
		p.file = nil
	}

	backupPath := p.path + ".bak"
	if err := os.Rename(p.path, backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	file, err := os.OpenFile(p.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		os.Rename(backupPath, p.path)
		return fmt.Errorf("failed to create new file: %w", err)
	}
	p.file = file

	if err := p.writeHeader(); err != nil {
		return err
	}

	for _, r := range rs {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		if _, err := p.file.Write(append(data, '\n')); err != nil {
			return err
		}
	}

	if err := p.file.Sync(); err != nil {
		return err
	}

	os.Remove(backupPath)

	return nil
}

// Close releases file handles and resources.
func (p *JSONLPersistence) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if p.file != nil {
		err := p.file.Close()
		p.file = nil
		return err
	}
	return nil
}
