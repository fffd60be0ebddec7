package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// osFileSystem is the FileSystem backed by package os.
type osFileSystem struct{}

func (osFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// configPath returns the absolute path of the config file: configured when
// non-empty, the resolver's default file name otherwise. Relative paths are
// resolved against the resolver's working directory.
func (r *Resolver) configPath(configured string) (string, error) {
	path := configured
	if path == "" {
		path = r.defaultFile
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	base := r.workDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("error resolving working directory: %w", err)
		}
		base = wd
	}

	return filepath.Join(base, path), nil
}

// parseJSON loads the config file at path. A path that does not exist or is
// not a regular file yields an empty mapping and no error.
func (r *Resolver) parseJSON(path string) (map[string]any, error) {
	info, err := r.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return map[string]any{}, nil
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	values, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedConfig, path, err)
	}

	if err := r.validateSchema(data); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
	}

	return values, nil
}

// decodeObject decodes data as a single top-level JSON object.
func decodeObject(data []byte) (map[string]any, error) {
	var values map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&values); err != nil {
		return nil, err
	}
	if values == nil {
		return nil, errors.New("top-level value is not an object")
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}

	return values, nil
}

func (r *Resolver) validateSchema(data []byte) error {
	if r.schema == nil {
		return nil
	}

	result, err := r.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}

	return errors.New(strings.Join(msgs, "; "))
}
