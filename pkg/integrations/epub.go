package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/go-shiori/go-epub"

	"github.com/ebenson/strips/pkg/data"
)

// EPubExporter compiles cached comics into a single EPUB, one section per
// comic with its title, image and alt text.
type EPubExporter struct {
	outputDir  string
	normalizer *ImageNormalizer
}

func NewEPubExporter(outputDir string) *EPubExporter {
	return &EPubExporter{
		outputDir:  outputDir,
		normalizer: NewImageNormalizer(1200),
	}
}

// Export writes the EPUB and returns its path. Comics must already have
// their images resolved to local files; outputName defaults to the title.
func (e *EPubExporter) Export(title string, comics []*data.Comic, outputName string) (string, error) {
	if len(comics) == 0 {
		return "", fmt.Errorf("no comics to export")
	}

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	book, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("create epub: %w", err)
	}
	book.SetAuthor("xkcd")
	book.SetLang("en")

	// go-epub reads images from disk, so normalized copies go through a
	// scratch dir that lives until Write is done.
	scratch, err := os.MkdirTemp("", "strips-epub-*")
	if err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	for _, comic := range comics {
		if err := e.addComic(book, comic, scratch); err != nil {
			return "", fmt.Errorf("add comic %d: %w", comic.Number, err)
		}
	}

	if outputName == "" {
		outputName = sanitizeFilename(title) + ".epub"
	}
	outputPath := filepath.Join(e.outputDir, outputName)
	if err := book.Write(outputPath); err != nil {
		return "", fmt.Errorf("write epub: %w", err)
	}
	return outputPath, nil
}

func (e *EPubExporter) addComic(book *epub.Epub, comic *data.Comic, scratch string) error {
	raw, err := os.ReadFile(comic.ImagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	normalized, ext, err := e.normalizer.Normalize(raw)
	if err != nil {
		return err
	}

	imageFile := fmt.Sprintf("comic-%d.%s", comic.Number, ext)
	scratchPath := filepath.Join(scratch, imageFile)
	if err := os.WriteFile(scratchPath, normalized, 0644); err != nil {
		return fmt.Errorf("stage image: %w", err)
	}

	internalPath, err := book.AddImage(scratchPath, imageFile)
	if err != nil {
		return fmt.Errorf("embed image: %w", err)
	}

	sectionTitle := fmt.Sprintf("%d: %s", comic.Number, comic.Title)
	body := fmt.Sprintf(`<h1>%s</h1>
<img src="%s" alt=""/>
<p><em>%s</em></p>`,
		html.EscapeString(sectionTitle), internalPath, html.EscapeString(comic.AltText))

	sectionFile := fmt.Sprintf("comic-%d.xhtml", comic.Number)
	if _, err := book.AddSection(body, sectionTitle, sectionFile, ""); err != nil {
		return fmt.Errorf("add section: %w", err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	out := []rune(name)
	for i, r := range out {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			out[i] = '_'
		}
	}
	return string(out)
}
