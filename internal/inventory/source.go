package inventory

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmc-toolbox/common"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

//go:generate mockgen -source source.go -destination=mock_source.go -package=inventory

var (
	ErrFileSource = errors.New("error in inventory file source")
)

// Source returns the component inventory of the running machine.
type Source interface {
	Inventory(ctx context.Context) (*common.Device, error)
}

// File is a Source that reads a device inventory document in YAML or JSON.
//
// The document fields are those of the common.Device JSON representation,
// the file is read on each Inventory call.
type File struct {
	fs   afero.Fs
	path string
}

// NewFileSource returns a File source for the inventory document at path.
func NewFileSource(fs afero.Fs, path string) (*File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json":
	default:
		return nil, errors.Wrap(ErrFileSource, "expected a .yml, .yaml or .json file: "+path)
	}

	return &File{fs: fs, path: path}, nil
}

// Inventory implements the Source interface.
func (f *File) Inventory(_ context.Context) (*common.Device, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, errors.Wrap(ErrFileSource, err.Error())
	}

	device := &common.Device{}
	if err := yaml.Unmarshal(data, device); err != nil {
		return nil, errors.Wrap(ErrFileSource, f.path+": "+err.Error())
	}

	return device, nil
}

// Snapshot is a Source that queries the wrapped source once and returns that
// result to every caller, so a single inventory collection sees one device
// inventory. A new Snapshot is created for each collection.
type Snapshot struct {
	source Source

	once   sync.Once
	device *common.Device
	err    error
}

// NewSnapshot returns a Snapshot of source.
func NewSnapshot(source Source) *Snapshot {
	return &Snapshot{source: source}
}

// Inventory implements the Source interface.
func (s *Snapshot) Inventory(ctx context.Context) (*common.Device, error) {
	s.once.Do(func() {
		s.device, s.err = s.source.Inventory(ctx)
	})

	return s.device, s.err
}
