package sources

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ebenson/strips/pkg/data"
)

const (
	DefaultBaseURL = "https://xkcd.com"
	explainBaseURL = "https://www.explainxkcd.com/wiki/index.php"
)

// comicInfo is the subset of the info.0.json document this tool needs.
type comicInfo struct {
	Num       int    `json:"num"`
	SafeTitle string `json:"safe_title"`
	Img       string `json:"img"`
	Alt       string `json:"alt"`
}

type XKCD struct {
	api     *http.Client
	baseURL string
}

func NewXKCD(baseURL string) *XKCD {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &XKCD{api: http.DefaultClient, baseURL: baseURL}
}

// ParseComic decodes an info.0.json body. Used both for fresh responses and
// for bodies read back from the cache.
func ParseComic(raw []byte) (*data.Comic, error) {
	var info comicInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("%w: %v", data.ErrParse, err)
	}
	if info.Num < 1 || info.Img == "" {
		return nil, fmt.Errorf("%w: missing num or img field", data.ErrParse)
	}
	return &data.Comic{
		Number:   info.Num,
		Title:    info.SafeTitle,
		ImageURL: info.Img,
		AltText:  info.Alt,
	}, nil
}

func (x *XKCD) get(url string) (*data.Comic, []byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", data.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := x.api.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: GET %s: %v", data.ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: GET %s: status %s", data.ErrFetch, url, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: GET %s: %v", data.ErrFetch, url, err)
	}

	comic, err := ParseComic(raw)
	if err != nil {
		return nil, nil, err
	}
	return comic, raw, nil
}

// Latest fetches the current newest comic.
func (x *XKCD) Latest() (*data.Comic, []byte, error) {
	return x.get(fmt.Sprintf("%s/info.0.json", x.baseURL))
}

// Comic fetches one specific comic by number.
func (x *XKCD) Comic(number int) (*data.Comic, []byte, error) {
	return x.get(fmt.Sprintf("%s/%d/info.0.json", x.baseURL, number))
}

func (x *XKCD) ViewerURL(number int) string {
	return fmt.Sprintf("%s/%d/", x.baseURL, number)
}

func (x *XKCD) ExplainURL(number int) string {
	return fmt.Sprintf("%s/%d", explainBaseURL, number)
}
