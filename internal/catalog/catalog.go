// Package catalog reads and writes YAML files listing transaction methods and
// tags, and imports them into a store.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/ledgerfield/internal/common"
	"github.com/Veraticus/ledgerfield/internal/storage"
)

// File is the on-disk catalog layout.
type File struct {
	TxMethods []string `yaml:"tx_methods"`
	Tags      []string `yaml:"tags"`
}

// Len returns the number of entries in the file.
func (f File) Len() int {
	return len(f.TxMethods) + len(f.Tags)
}

// Adder stores catalog entries. It returns common.ErrDuplicateEntry for names
// that already exist.
type Adder interface {
	AddTxMethod(ctx context.Context, name string) error
	AddTag(ctx context.Context, name string) error
}

// Result counts what an import did.
type Result struct {
	Added   int
	Skipped int
}

// LoadFile parses the catalog file at path.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a catalog from r. Unknown keys are an error.
func Parse(r io.Reader) (File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("failed to decode catalog: %w", err)
	}

	file.TxMethods = trimNames(file.TxMethods)
	file.Tags = trimNames(file.Tags)
	return file, nil
}

// Write encodes file as YAML to w.
func Write(w io.Writer, file File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

// Import adds every method and then every tag of file to store. Names that
// already exist are skipped. Nothing is written unless every name is valid.
// progress, when set, is called once per entry.
func Import(ctx context.Context, store Adder, file File, progress func()) (Result, error) {
	var res Result

	if err := Validate(file); err != nil {
		return res, err
	}

	add := func(name string, fn func(context.Context, string) error) error {
		if progress != nil {
			defer progress()
		}
		err := fn(ctx, name)
		switch {
		case err == nil:
			res.Added++
		case errors.Is(err, common.ErrDuplicateEntry):
			res.Skipped++
		default:
			return fmt.Errorf("failed to import %q: %w", name, err)
		}
		return nil
	}

	for _, name := range file.TxMethods {
		if err := add(name, store.AddTxMethod); err != nil {
			return res, err
		}
	}
	for _, name := range file.Tags {
		if err := add(name, store.AddTag); err != nil {
			return res, err
		}
	}

	return res, nil
}

// Validate checks every name in file against the storage naming rules and
// reports all invalid ones together.
func Validate(file File) error {
	var errs []error
	check := func(kind string, names []string) {
		for _, name := range names {
			if err := storage.ValidateName(name); err != nil {
				errs = append(errs, fmt.Errorf("%s %q: %w", kind, name, err))
			}
		}
	}
	check("tx method", file.TxMethods)
	check("tag", file.Tags)
	return errors.Join(errs...)
}

func trimNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
