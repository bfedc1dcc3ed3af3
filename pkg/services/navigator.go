package services

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"

	"github.com/ebenson/strips/pkg/data"
	"github.com/ebenson/strips/pkg/sources"
)

// Store is the slice of the cache the navigator needs.
type Store interface {
	HasJSON(number int) bool
	ReadJSON(number int) ([]byte, error)
	WriteJSONIfAbsent(number int, raw []byte) error
	WriteImageIfAbsent(number int, sourceURL string) (string, error)
	ReadLatest() (int, error)
	WriteLatest(number int) error
	ReadLast() (int, error)
	WriteLast(number int) error
}

// Navigator resolves navigation requests (a specific number, next, prev,
// random, latest, last viewed, by URL) into fully cached comics. It owns the
// two persisted pointers: the highest number ever cached and the number shown
// most recently. Requests are synchronous, one fetch at a time.
type Navigator struct {
	source  sources.Source
	store   Store
	library *data.Library // optional, nil disables history recording

	randInt func(n int) int
}

func NewNavigator(source sources.Source, store Store, library *data.Library) *Navigator {
	return &Navigator{
		source:  source,
		store:   store,
		library: library,
		randInt: rand.Intn,
	}
}

// Get resolves one comic. Number 0 is the "current latest" sentinel and
// always hits the network, so the latest pointer can move forward. Any other
// number is served from the cache when possible. Either way the image is
// ensured locally and both pointers are brought up to date.
func (n *Navigator) Get(number int) (*data.Comic, error) {
	var (
		comic *data.Comic
		raw   []byte
		err   error
	)

	switch {
	case number == 0:
		comic, raw, err = n.source.Latest()
	case n.store.HasJSON(number):
		raw, err = n.store.ReadJSON(number)
		if err == nil {
			comic, err = sources.ParseComic(raw)
		}
	default:
		comic, raw, err = n.source.Comic(number)
	}
	if err != nil {
		return nil, err
	}

	if err := n.store.WriteJSONIfAbsent(comic.Number, raw); err != nil {
		return nil, err
	}

	path, err := n.store.WriteImageIfAbsent(comic.Number, comic.ImageURL)
	if err != nil {
		return nil, err
	}
	comic.ImagePath = path
	comic.Format = data.FormatFromExt(data.ImageExt(comic.ImageURL))

	if err := n.advancePointers(comic.Number); err != nil {
		return nil, err
	}

	if n.library != nil {
		// History is best-effort, a broken library db must not block reading.
		_ = n.library.RecordView(comic)
	}

	return comic, nil
}

func (n *Navigator) advancePointers(number int) error {
	latest, err := n.readPointer(n.store.ReadLatest)
	if err != nil {
		return err
	}
	if number > latest {
		if err := n.store.WriteLatest(number); err != nil {
			return err
		}
	}

	last, err := n.readPointer(n.store.ReadLast)
	if err != nil {
		return err
	}
	if number != last {
		if err := n.store.WriteLast(number); err != nil {
			return err
		}
	}
	return nil
}

// readPointer treats a missing pointer file as 0 (first run).
func (n *Navigator) readPointer(read func() (int, error)) (int, error) {
	value, err := read()
	if errors.Is(err, data.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Next moves one comic forward from the last viewed one, never past the
// latest known number.
func (n *Navigator) Next() (*data.Comic, error) {
	current, err := n.readPointer(n.store.ReadLast)
	if err != nil {
		return nil, err
	}
	latest, err := n.readPointer(n.store.ReadLatest)
	if err != nil {
		return nil, err
	}

	target := current + 1
	if latest > 0 && target > latest {
		target = latest
	}
	return n.Get(target)
}

// Prev moves one comic back from the last viewed one, never below 1.
func (n *Navigator) Prev() (*data.Comic, error) {
	current, err := n.readPointer(n.store.ReadLast)
	if err != nil {
		return nil, err
	}

	target := current - 1
	if target < 1 {
		target = 1
	}
	return n.Get(target)
}

// Random fetches the newest comic's number fresh from the network, then picks
// uniformly from [0, N). The draw can never land on N itself, and a draw of 0
// resolves through the latest-comic endpoint; both quirks are kept as-is.
func (n *Navigator) Random() (*data.Comic, error) {
	latest, _, err := n.source.Latest()
	if err != nil {
		return nil, err
	}
	return n.Get(n.randInt(latest.Number))
}

// LatestCached re-reads the latest pointer and resolves that comic. On a
// fresh cache the pointer reads as 0, which falls through to a live fetch.
func (n *Navigator) LatestCached() (*data.Comic, error) {
	latest, err := n.readPointer(n.store.ReadLatest)
	if err != nil {
		return nil, err
	}
	return n.Get(latest)
}

// LastViewed re-reads the last pointer and resolves that comic.
func (n *Navigator) LastViewed() (*data.Comic, error) {
	last, err := n.readPointer(n.store.ReadLast)
	if err != nil {
		return nil, err
	}
	return n.Get(last)
}

var comicNumberRe = regexp.MustCompile(`\d+`)

// FromURL resolves the first run of decimal digits in url as a comic number.
func (n *Navigator) FromURL(url string) (*data.Comic, error) {
	digits := comicNumberRe.FindString(url)
	if digits == "" {
		return nil, fmt.Errorf("%w: no comic number in %q", data.ErrInvalidInput, url)
	}
	number, err := strconv.Atoi(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", data.ErrInvalidInput, url, err)
	}
	return n.Get(number)
}

// ViewerURL returns the canonical page for a comic; opening it is the
// caller's business.
func (n *Navigator) ViewerURL(number int) string {
	return n.source.ViewerURL(number)
}

// ExplainURL returns the explanation-wiki page for a comic.
func (n *Navigator) ExplainURL(number int) string {
	return n.source.ExplainURL(number)
}
