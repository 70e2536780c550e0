// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/monomyth/gopherboy/curated"
	"github.com/monomyth/gopherboy/logger"
)

// Error patterns for the cartridgeloader package.
const (
	LoadError = "cartridgeloader: %v"
	HashError = "cartridgeloader: unexpected hash value"
)

// Loader is used to specify the cartridge to use when Attach()ing to the
// console.
type Loader struct {
	// filename of the cartridge to load
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() are no-ops once
	// this field is populated
	Data []byte

	// the filesystem the cartridge is read from
	fs afero.Fs
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The cartridge is read from the host filesystem.
func NewLoader(filename string) Loader {
	return NewLoaderFs(filename, afero.NewOsFs())
}

// NewLoaderFs is like NewLoader but reads the cartridge from the given
// filesystem. Tests use this with an in-memory filesystem.
func NewLoaderFs(filename string, fs afero.Fs) Loader {
	return Loader{
		Filename: filename,
		fs:       fs,
	}
}

// ShortName returns a shortened version of the cartridge filename, suitable
// for display.
func (cl Loader) ShortName() string {
	sn := filepath.Base(cl.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// Load the cartridge data into memory and validate the hash.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	data, err := afero.ReadFile(cl.fs, cl.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	cl.Data = data

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(HashError)
	}
	cl.Hash = hash

	logger.Logf(logger.Allow, "cartridgeloader", "%s (SHA1 %s)", cl.ShortName(), cl.Hash)

	return nil
}
