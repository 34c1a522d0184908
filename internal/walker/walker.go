package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"path"
	"sort"
)

// DefaultMaxFileSize is the largest asset copied into an export (8 MB).
const DefaultMaxFileSize int64 = 8 << 20

// FileInfo holds metadata about a single asset discovered during traversal.
type FileInfo struct {
	Path        string // Slash-separated path relative to the root.
	Size        int64  // File size in bytes.
	MediaType   string // Media type guessed from the extension.
	ContentHash string // SHA-256 hex digest of the file content.
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	Include     []string // Glob patterns; only matching files are included.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Walk traverses fsys and returns metadata for every file that passes
// filtering, sorted by path.
func Walk(fsys fs.FS, config WalkerConfig) ([]FileInfo, error) {
	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []FileInfo

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walker: %s: %w", p, walkErr)
		}

		if hidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if !MatchesInclude(p, config.Include) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		// Skip files exceeding the size limit.
		if info.Size() > maxSize {
			return nil
		}

		hash, err := HashFile(fsys, p)
		if err != nil {
			return err
		}

		files = append(files, FileInfo{
			Path:        p,
			Size:        info.Size(),
			MediaType:   mediaType(p),
			ContentHash: hash,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// HashFile computes the SHA-256 digest of the named file in fsys.
func HashFile(fsys fs.FS, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func mediaType(p string) string {
	if t := mime.TypeByExtension(path.Ext(p)); t != "" {
		return t
	}
	return "application/octet-stream"
}
