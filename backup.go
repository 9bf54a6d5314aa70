// Compressed backup of the previous store file.
//
// With Config.Backup set, Save copies the file it is about to replace into
// <path>.zst, Zstd-compressed. Only one generation is kept. Restoring is
// always an explicit LoadBackup call.
package bookmarks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/klauspost/compress/zstd"
)

// BackupSuffix is appended to the store path to name the backup file.
const BackupSuffix = ".zst"

// Shared encoder/decoder, both safe for concurrent use. Construction is
// expensive so they are built once.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

func compress(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	return zstdEncoder.EncodeAll(data, nil)
}

func decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrCorruptStore, err)
	}
	return out, nil
}

// backup snapshots the current file at path through a temporary file, so
// an interrupted write leaves the previous snapshot intact. A missing file
// is not an error: there is nothing to keep yet.
func backup(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: backup read %s: %w", ErrIO, path, err)
	}
	target := path + BackupSuffix
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, compress(data), 0600); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: backup write %s: %w", ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: backup rename %s: %w", ErrIO, target, err)
	}
	return nil
}

// LoadBackup reads the store from the backup written by the last Save.
func LoadBackup(config Config) (*Store, error) {
	path, err := StorePath(config)
	if err != nil {
		return nil, err
	}
	path += BackupSuffix
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrIO, path, err)
	}
	data, err := decompress(raw)
	if err != nil {
		return nil, err
	}
	return decodeStore(data, config)
}
