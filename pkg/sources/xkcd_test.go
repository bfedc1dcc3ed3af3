package sources

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ebenson/strips/pkg/data"
	"github.com/stretchr/testify/assert"
)

const woodpeckerJSON = `{"num": 614, "safe_title": "Woodpecker", ` +
	`"img": "https://imgs.xkcd.com/comics/woodpecker.png", ` +
	`"alt": "If you don't have an extension cord I can get that for you.", ` +
	`"year": "2009", "month": "7", "day": "24"}`

func newTestServer(t *testing.T, latest int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/info.0.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"num": %d, "safe_title": "Latest", "img": "https://example.com/latest.png", "alt": "alt"}`, latest)
	})
	mux.HandleFunc("/614/info.0.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(woodpeckerJSON))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestXKCD_Latest(t *testing.T) {
	server := newTestServer(t, 3000)
	x := NewXKCD(server.URL)

	comic, raw, err := x.Latest()
	assert.NoError(t, err)
	assert.Equal(t, 3000, comic.Number)
	assert.Equal(t, "Latest", comic.Title)
	assert.NotEmpty(t, raw)
}

func TestXKCD_Comic(t *testing.T) {
	server := newTestServer(t, 3000)
	x := NewXKCD(server.URL)

	comic, raw, err := x.Comic(614)
	assert.NoError(t, err)
	assert.Equal(t, 614, comic.Number)
	assert.Equal(t, "Woodpecker", comic.Title)
	assert.Equal(t, "https://imgs.xkcd.com/comics/woodpecker.png", comic.ImageURL)
	assert.Contains(t, comic.AltText, "extension cord")
	// The raw body must be the exact bytes the server sent.
	assert.Equal(t, woodpeckerJSON, string(raw))
}

func TestXKCD_ComicNotThere(t *testing.T) {
	server := newTestServer(t, 3000)
	x := NewXKCD(server.URL)

	_, _, err := x.Comic(99999)
	assert.True(t, errors.Is(err, data.ErrFetch), "expected ErrFetch, got %v", err)
}

func TestXKCD_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	x := NewXKCD(server.URL)
	_, _, err := x.Latest()
	assert.True(t, errors.Is(err, data.ErrParse), "expected ErrParse, got %v", err)
}

func TestParseComicMissingFields(t *testing.T) {
	_, err := ParseComic([]byte(`{"safe_title": "No number"}`))
	assert.True(t, errors.Is(err, data.ErrParse), "expected ErrParse, got %v", err)
}

func TestURLs(t *testing.T) {
	x := NewXKCD("")

	assert.Equal(t, "https://xkcd.com/614/", x.ViewerURL(614))
	assert.Equal(t, "https://www.explainxkcd.com/wiki/index.php/614", x.ExplainURL(614))
}
