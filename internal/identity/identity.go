package identity

import (
	"io/fs"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	AttributeSysVendor   = "sys_vendor"
	AttributeProductName = "product_name"
)

// Attributes are the firmware identity attribute values keyed by attribute name.
//
// Values are returned as read from the firmware interface and may include
// surrounding whitespace, usually a trailing newline.
type Attributes map[string]string

// Keys returns the identity attributes read by the Reader.
func Keys() []string {
	return []string{AttributeSysVendor, AttributeProductName}
}

// ReadError records a failure reading a single identity attribute.
type ReadError struct {
	Attribute string
	Path      string
	Err       error
}

func (e *ReadError) Error() string {
	return "identity attribute " + e.Attribute + " read error: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// IsUnavailable returns true when the error was caused by the identity attribute path not existing,
// as is the case on platforms without a DMI interface.
func IsUnavailable(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Reader reads the firmware identity attributes from the DMI sysfs interface.
type Reader struct {
	fs   afero.Fs
	path string
}

// NewReader returns a Reader for the identity attributes under path on the given filesystem.
func NewReader(fs afero.Fs, path string) *Reader {
	return &Reader{fs: fs, path: path}
}

// Path returns the directory the attributes are read from.
func (r *Reader) Path() string {
	return r.path
}

// Read returns a fresh set of identity attributes.
//
// Any attribute that cannot be read fails the whole read, the error is not
// evidence the machine is of a different make.
func (r *Reader) Read() (Attributes, error) {
	attrs := make(Attributes, len(Keys()))

	for _, key := range Keys() {
		path := filepath.Join(r.path, key)

		data, err := afero.ReadFile(r.fs, path)
		if err != nil {
			return nil, &ReadError{Attribute: key, Path: path, Err: err}
		}

		attrs[key] = string(data)
	}

	return attrs, nil
}
