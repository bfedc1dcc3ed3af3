package data

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Pointer files live next to the cached artifacts.
const (
	latestPointerFile = "latest"
	lastPointerFile   = "last"
)

// FileStore keeps one JSON file and one image file per comic number under a
// single directory, plus the "latest" and "last" pointer files. Artifacts are
// write-once: a second write for the same number never replaces the first.
// Single-process use is assumed, there is no file locking.
type FileStore struct {
	dir    string
	client *http.Client
}

// NewFileStore creates the cache directory (and parents) if missing.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileStore{dir: dir, client: http.DefaultClient}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) jsonPath(number int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.json", number))
}

func (s *FileStore) imagePath(number int, ext string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.%s", number, ext))
}

func (s *FileStore) HasJSON(number int) bool {
	_, err := os.Stat(s.jsonPath(number))
	return err == nil
}

// ReadJSON returns the cached body exactly as it was fetched.
func (s *FileStore) ReadJSON(number int) ([]byte, error) {
	raw, err := os.ReadFile(s.jsonPath(number))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: comic %d", ErrNotFound, number)
	}
	if err != nil {
		return nil, fmt.Errorf("read comic %d: %w", number, err)
	}
	return raw, nil
}

// WriteJSONIfAbsent persists raw verbatim, unless an artifact for number
// already exists, in which case the existing bytes stay untouched.
func (s *FileStore) WriteJSONIfAbsent(number int, raw []byte) error {
	path := s.jsonPath(number)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("write comic %d: %w", number, err)
	}
	return nil
}

func (s *FileStore) HasImage(number int, ext string) bool {
	_, err := os.Stat(s.imagePath(number, ext))
	return err == nil
}

// WriteImageIfAbsent downloads sourceURL into the cache, keyed by number and
// the URL's extension, only if that file is not already present. The local
// path is returned either way. A failed download leaves nothing behind.
func (s *FileStore) WriteImageIfAbsent(number int, sourceURL string) (string, error) {
	path := s.imagePath(number, ImageExt(sourceURL))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	resp, err := s.client.Get(sourceURL)
	if err != nil {
		return "", fmt.Errorf("%w: image %s: %v", ErrFetch, sourceURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: image %s: status %s", ErrFetch, sourceURL, resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: image %s: %v", ErrFetch, sourceURL, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("write image %d: %w", number, err)
	}
	return path, nil
}

func (s *FileStore) ReadLatest() (int, error) {
	return s.readPointer(latestPointerFile)
}

func (s *FileStore) WriteLatest(number int) error {
	return s.writePointer(latestPointerFile, number)
}

func (s *FileStore) ReadLast() (int, error) {
	return s.readPointer(lastPointerFile)
}

func (s *FileStore) WriteLast(number int) error {
	return s.writePointer(lastPointerFile, number)
}

func (s *FileStore) readPointer(name string) (int, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return 0, fmt.Errorf("%w: pointer %s", ErrNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("read pointer %s: %w", name, err)
	}
	number, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("pointer %s: %w", name, err)
	}
	return number, nil
}

func (s *FileStore) writePointer(name string, number int) error {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(strconv.Itoa(number)), 0644); err != nil {
		return fmt.Errorf("write pointer %s: %w", name, err)
	}
	return nil
}

// Cached lists the numbers of all comics with a cached JSON artifact,
// ascending.
func (s *FileStore) Cached() ([]int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read cache dir: %w", err)
	}

	var numbers []int
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		number, err := strconv.Atoi(strings.TrimSuffix(name, ".json"))
		if err != nil || number < 1 {
			continue
		}
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	return numbers, nil
}
