// Package utils holds small helpers shared by the command line tools.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads the given ROM file, transparently decompressing gz, zip and
// 7z archives. For archives, the first file inside is taken.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch filepath.Ext(filename) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var r *zip.Reader
		r, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err == nil {
			if len(r.File) == 0 {
				return nil, fmt.Errorf("%s: empty archive", filename)
			}
			decoder, err = r.File[0].Open()
		}
	case ".7z":
		var r *sevenzip.Reader
		r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err == nil {
			if len(r.File) == 0 {
				return nil, fmt.Errorf("%s: empty archive", filename)
			}
			decoder, err = r.File[0].Open()
		}
	default:
		// plain image, return as is
		return data, nil
	}
	if err != nil {
		return nil, err
	}

	return io.ReadAll(decoder)
}
