package flyer

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUnencodableText reports text the PDF core fonts cannot show.
	ErrUnencodableText = errors.New("text is not representable in WinAnsi encoding")
	// ErrInvalidStarCount reports a negative star count.
	ErrInvalidStarCount = errors.New("star count must not be negative")
)

// ValidateContent checks that every line can be drawn with a PDF core font,
// which only covers Windows-1252.
func ValidateContent(c Content) error {
	if c.StarCount < 0 {
		return ErrInvalidStarCount
	}
	enc := charmap.Windows1252.NewEncoder()
	for _, line := range c.Lines() {
		if _, err := enc.String(line); err != nil {
			return fmt.Errorf("%w: %q", ErrUnencodableText, line)
		}
	}
	return nil
}
