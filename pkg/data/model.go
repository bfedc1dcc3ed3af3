package data

import "strings"

// ImageFormat identifies how a cached comic image is encoded.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
	// FormatGIF is the fallback for any extension we don't recognize.
	FormatGIF ImageFormat = "gif"
)

type Comic struct {
	Number   int
	Title    string
	ImageURL string
	AltText  string

	// Filled in once the image has been resolved to the local cache.
	ImagePath string
	Format    ImageFormat
}

// ImageExt returns the cache filename extension for an image URL,
// taken from the URL's final three characters.
func ImageExt(url string) string {
	if len(url) < 3 {
		return string(FormatGIF)
	}
	return strings.ToLower(url[len(url)-3:])
}

// FormatFromExt maps a filename extension to an ImageFormat.
// "jpg" and "peg" both mean JPEG ("peg" being the tail of ".jpeg").
func FormatFromExt(ext string) ImageFormat {
	switch strings.ToLower(ext) {
	case "png":
		return FormatPNG
	case "jpg", "peg":
		return FormatJPEG
	default:
		return FormatGIF
	}
}
