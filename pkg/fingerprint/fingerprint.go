// Package fingerprint computes content-addressable digests used as the sole
// equality test during synchronization. Two byte sequences are considered
// equal for sync purposes iff their fingerprints are equal.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

// chunkSize is the read buffer size for file hashing. Files are streamed so
// memory use stays constant regardless of file size.
const chunkSize = 8192

// Fingerprint is a fixed-length hex-encoded SHA-256 digest.
type Fingerprint string

// String returns the hex digest.
func (f Fingerprint) String() string { return string(f) }

// New computes the fingerprint of a byte sequence.
func New(content []byte) Fingerprint {
	sum := sha256.Sum256(content)
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// OfFile computes the fingerprint of a file's contents, streamed in
// fixed-size chunks.
func OfFile(fsys afero.Fs, path string) (Fingerprint, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError("file", path)
		}
		return "", errors.WrapIO("open", path, err)
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.WrapIO("read", path, err)
		}
	}

	return Fingerprint(hex.EncodeToString(h.Sum(nil))), nil
}
