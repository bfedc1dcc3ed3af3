package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ebenson/strips/pkg/data"
)

// memStore is an in-memory Store so the navigation policy is testable
// without touching the filesystem.
type memStore struct {
	json        map[int][]byte
	images      map[int]string
	latest      int
	last        int
	hasLatest   bool
	hasLast     bool
	imageWrites int
}

func newMemStore() *memStore {
	return &memStore{json: map[int][]byte{}, images: map[int]string{}}
}

func (m *memStore) HasJSON(number int) bool {
	_, ok := m.json[number]
	return ok
}

func (m *memStore) ReadJSON(number int) ([]byte, error) {
	raw, ok := m.json[number]
	if !ok {
		return nil, fmt.Errorf("%w: comic %d", data.ErrNotFound, number)
	}
	return raw, nil
}

func (m *memStore) WriteJSONIfAbsent(number int, raw []byte) error {
	if _, ok := m.json[number]; ok {
		return nil
	}
	m.json[number] = raw
	return nil
}

func (m *memStore) WriteImageIfAbsent(number int, sourceURL string) (string, error) {
	if path, ok := m.images[number]; ok {
		return path, nil
	}
	m.imageWrites++
	path := fmt.Sprintf("mem/%d.%s", number, data.ImageExt(sourceURL))
	m.images[number] = path
	return path, nil
}

func (m *memStore) ReadLatest() (int, error) {
	if !m.hasLatest {
		return 0, fmt.Errorf("%w: pointer latest", data.ErrNotFound)
	}
	return m.latest, nil
}

func (m *memStore) WriteLatest(number int) error {
	m.latest, m.hasLatest = number, true
	return nil
}

func (m *memStore) ReadLast() (int, error) {
	if !m.hasLast {
		return 0, fmt.Errorf("%w: pointer last", data.ErrNotFound)
	}
	return m.last, nil
}

func (m *memStore) WriteLast(number int) error {
	m.last, m.hasLast = number, true
	return nil
}

// stubSource serves a fixed archive of comics 1..latest and counts fetches
// per endpoint (0 is the latest-comic endpoint).
type stubSource struct {
	latest  int
	fetches map[int]int
}

func newStubSource(latest int) *stubSource {
	return &stubSource{latest: latest, fetches: map[int]int{}}
}

func comicJSON(number int) []byte {
	return []byte(fmt.Sprintf(
		`{"num": %d, "safe_title": "Comic %d", "img": "https://example.com/%d.png", "alt": "alt %d"}`,
		number, number, number, number))
}

func (s *stubSource) Latest() (*data.Comic, []byte, error) {
	s.fetches[0]++
	return s.serve(s.latest)
}

func (s *stubSource) Comic(number int) (*data.Comic, []byte, error) {
	s.fetches[number]++
	if number < 1 || number > s.latest {
		return nil, nil, fmt.Errorf("%w: comic %d: status 404", data.ErrFetch, number)
	}
	return s.serve(number)
}

func (s *stubSource) serve(number int) (*data.Comic, []byte, error) {
	raw := comicJSON(number)
	return &data.Comic{
		Number:   number,
		Title:    fmt.Sprintf("Comic %d", number),
		ImageURL: fmt.Sprintf("https://example.com/%d.png", number),
		AltText:  fmt.Sprintf("alt %d", number),
	}, raw, nil
}

func (s *stubSource) ViewerURL(number int) string {
	return fmt.Sprintf("https://example.com/%d/", number)
}

func (s *stubSource) ExplainURL(number int) string {
	return fmt.Sprintf("https://explain.example.com/%d", number)
}

func setupNavigator(latest int) (*Navigator, *memStore, *stubSource) {
	store := newMemStore()
	source := newStubSource(latest)
	return NewNavigator(source, store, nil), store, source
}

func TestGetFetchesOnceThenHitsCache(t *testing.T) {
	nav, store, source := setupNavigator(1000)

	first, err := nav.Get(614)
	if err != nil {
		t.Fatalf("Get(614) error = %v", err)
	}
	second, err := nav.Get(614)
	if err != nil {
		t.Fatalf("Second Get(614) error = %v", err)
	}

	if source.fetches[614] != 1 {
		t.Errorf("Expected exactly 1 fetch, got %d", source.fetches[614])
	}
	if first.Title != second.Title || first.AltText != second.AltText {
		t.Error("Cache hit returned a different comic")
	}

	raw, _ := store.ReadJSON(614)
	if string(raw) != string(comicJSON(614)) {
		t.Errorf("Cached bytes differ from the fetched body: %s", raw)
	}
	if store.imageWrites != 1 {
		t.Errorf("Expected 1 image download, got %d", store.imageWrites)
	}
}

func TestGetResolvesImageAndFormat(t *testing.T) {
	nav, _, _ := setupNavigator(1000)

	comic, err := nav.Get(614)
	if err != nil {
		t.Fatalf("Get(614) error = %v", err)
	}

	if comic.ImagePath != "mem/614.png" {
		t.Errorf("Expected image path mem/614.png, got %s", comic.ImagePath)
	}
	if comic.Format != data.FormatPNG {
		t.Errorf("Expected png format, got %s", comic.Format)
	}
}

func TestGetZeroAlwaysFetches(t *testing.T) {
	nav, store, source := setupNavigator(1000)

	for i := 0; i < 3; i++ {
		comic, err := nav.Get(0)
		if err != nil {
			t.Fatalf("Get(0) error = %v", err)
		}
		if comic.Number != 1000 {
			t.Errorf("Expected latest comic 1000, got %d", comic.Number)
		}
	}

	if source.fetches[0] != 3 {
		t.Errorf("Expected 3 latest fetches, got %d", source.fetches[0])
	}
	// The sentinel is never a cache key; the resolved number is.
	if store.HasJSON(0) {
		t.Error("Comic 0 must never be cached")
	}
	if !store.HasJSON(1000) {
		t.Error("Resolved latest comic should be cached")
	}
	if last, _ := store.ReadLast(); last != 1000 {
		t.Errorf("Expected lastViewed 1000, got %d", last)
	}
}

func TestPointerUpdates(t *testing.T) {
	nav, store, _ := setupNavigator(1000)

	if _, err := nav.Get(614); err != nil {
		t.Fatalf("Get(614) error = %v", err)
	}
	if latest, _ := store.ReadLatest(); latest != 614 {
		t.Errorf("Expected latestKnown 614, got %d", latest)
	}

	// A lower number moves lastViewed but never latestKnown.
	if _, err := nav.Get(10); err != nil {
		t.Fatalf("Get(10) error = %v", err)
	}
	if latest, _ := store.ReadLatest(); latest != 614 {
		t.Errorf("latestKnown must be monotone, got %d", latest)
	}
	if last, _ := store.ReadLast(); last != 10 {
		t.Errorf("Expected lastViewed 10, got %d", last)
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	nav, _, _ := setupNavigator(1000)

	// Establish latestKnown=614 and position at 300.
	if _, err := nav.Get(614); err != nil {
		t.Fatalf("Get(614) error = %v", err)
	}
	if _, err := nav.Get(300); err != nil {
		t.Fatalf("Get(300) error = %v", err)
	}

	comic, err := nav.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if comic.Number != 301 {
		t.Errorf("Expected 301, got %d", comic.Number)
	}

	comic, err = nav.Prev()
	if err != nil {
		t.Fatalf("Prev() error = %v", err)
	}
	if comic.Number != 300 {
		t.Errorf("Expected to be back at 300, got %d", comic.Number)
	}
}

func TestClamping(t *testing.T) {
	nav, _, _ := setupNavigator(1000)

	// At the lower bound.
	if _, err := nav.Get(1); err != nil {
		t.Fatalf("Get(1) error = %v", err)
	}
	comic, err := nav.Prev()
	if err != nil {
		t.Fatalf("Prev() error = %v", err)
	}
	if comic.Number != 1 {
		t.Errorf("Prev at comic 1 should stay at 1, got %d", comic.Number)
	}

	// At the known frontier.
	if _, err := nav.Get(614); err != nil {
		t.Fatalf("Get(614) error = %v", err)
	}
	comic, err = nav.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if comic.Number != 614 {
		t.Errorf("Next at latestKnown should stay at 614, got %d", comic.Number)
	}
}

func TestLatestCachedTracksFrontier(t *testing.T) {
	nav, _, _ := setupNavigator(1000)

	if _, err := nav.Get(614); err != nil {
		t.Fatalf("Get(614) error = %v", err)
	}

	comic, err := nav.LatestCached()
	if err != nil {
		t.Fatalf("LatestCached() error = %v", err)
	}
	if comic.Number != 614 {
		t.Errorf("Expected 614, got %d", comic.Number)
	}

	// A higher fetch moves the frontier.
	if _, err := nav.Get(900); err != nil {
		t.Fatalf("Get(900) error = %v", err)
	}
	comic, err = nav.LatestCached()
	if err != nil {
		t.Fatalf("LatestCached() error = %v", err)
	}
	if comic.Number != 900 {
		t.Errorf("Expected 900, got %d", comic.Number)
	}
}

func TestLastViewedFirstRunFallsThroughToLatest(t *testing.T) {
	nav, _, source := setupNavigator(1000)

	comic, err := nav.LastViewed()
	if err != nil {
		t.Fatalf("LastViewed() error = %v", err)
	}
	if comic.Number != 1000 {
		t.Errorf("Expected fallthrough to latest 1000, got %d", comic.Number)
	}
	if source.fetches[0] != 1 {
		t.Errorf("Expected 1 latest fetch, got %d", source.fetches[0])
	}
}

func TestRandomDrawsBelowLatest(t *testing.T) {
	nav, _, source := setupNavigator(1000)

	var drawn int
	nav.randInt = func(n int) int {
		drawn = n
		return 42
	}

	comic, err := nav.Random()
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if drawn != 1000 {
		t.Errorf("Expected draw over [0,1000), got [0,%d)", drawn)
	}
	if comic.Number != 42 {
		t.Errorf("Expected comic 42, got %d", comic.Number)
	}
	if source.fetches[0] != 1 {
		t.Errorf("Random must fetch the latest number fresh, got %d fetches", source.fetches[0])
	}
}

func TestRandomZeroDrawResolvesLatest(t *testing.T) {
	nav, _, _ := setupNavigator(1000)
	nav.randInt = func(n int) int { return 0 }

	comic, err := nav.Random()
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if comic.Number != 1000 {
		t.Errorf("A draw of 0 resolves the latest comic, got %d", comic.Number)
	}
}

func TestFromURL(t *testing.T) {
	nav, _, _ := setupNavigator(1000)

	comic, err := nav.FromURL("https://xkcd.com/614/")
	if err != nil {
		t.Fatalf("FromURL error = %v", err)
	}
	if comic.Number != 614 {
		t.Errorf("Expected 614, got %d", comic.Number)
	}

	_, err = nav.FromURL("https://example.com/no-digits/")
	if !errors.Is(err, data.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestFetchFailureLeavesNoCacheWrite(t *testing.T) {
	nav, store, _ := setupNavigator(1000)

	_, err := nav.Get(5000)
	if !errors.Is(err, data.ErrFetch) {
		t.Fatalf("Expected ErrFetch, got %v", err)
	}
	if store.HasJSON(5000) {
		t.Error("Failed fetch must not cache anything")
	}
	if store.hasLast || store.hasLatest {
		t.Error("Failed fetch must not move pointers")
	}
}
