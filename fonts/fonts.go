package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults registers the faces used by the HUD and banners: Go Regular
// for headings, the fixed 7x13 bitmap face for small print.
func LoadDefaults() error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load go regular: %w", err)
	}
	LoadFontWithSize(Regular, source, 14)
	LoadFontWithSize(Title, source, 32)
	fonts[Small] = text.NewGoXFace(basicfont.Face7x13)
	return nil
}

func LoadFontWithSize(name FontName, source *text.GoTextFaceSource, size float64) {
	fonts[name] = &text.GoTextFace{Source: source, Size: size}
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
