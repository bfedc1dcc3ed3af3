package sources

import "github.com/ebenson/strips/pkg/data"

// Source fetches comic metadata from a remote archive. Both calls return the
// response body verbatim alongside the parsed comic, so the cache can store
// exactly what the server sent.
type Source interface {
	Latest() (*data.Comic, []byte, error)
	Comic(number int) (*data.Comic, []byte, error)

	ViewerURL(number int) string
	ExplainURL(number int) string
}
