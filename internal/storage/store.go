package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrInvalidKey = errors.New("storage: invalid document key")
	ErrNotFound   = errors.New("storage: no matching entry")
	ErrAmbiguous  = errors.New("storage: reference matches several entries")
)

// Document is a free-form JSON object.
type Document map[string]any

// Store keeps one JSON file per key under baseDir. Read failures never reach
// callers: a missing or corrupt document loads as the caller's default.
type Store struct {
	baseDir string
	logger  *zap.Logger
}

func New(baseDir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{baseDir: baseDir, logger: logger}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.baseDir, key+".json"), nil
}

// Load decodes the document stored under key into out, which must be a
// non-nil pointer. It reports false and leaves out untouched when the
// document is missing or unreadable.
func (s *Store) Load(key string, out any) bool {
	p, err := s.path(key)
	if err != nil {
		s.logger.Warn("rejecting document key", zap.String("key", key), zap.Error(err))
		return false
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("document unreadable, using default", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		s.logger.Warn("load target is not a pointer", zap.String("key", key))
		return false
	}

	fresh := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		s.logger.Warn("document corrupt, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	rv.Elem().Set(fresh.Elem())
	return true
}

// LoadDocument returns the object stored under key, or def.
func (s *Store) LoadDocument(key string, def Document) Document {
	var doc Document
	if !s.Load(key, &doc) || doc == nil {
		return def
	}
	return doc
}

// Save writes v as indented JSON, replacing the previous document
// atomically.
func (s *Store) Save(key string, v any) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.baseDir, "."+key+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, p); err != nil {
		return err
	}

	s.logger.Debug("document saved", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// Keys lists stored document keys in lexical order.
func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".json" {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}
