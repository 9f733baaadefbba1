package pdf

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// encodeText converts UTF-8 to the WinAnsi bytes core fonts expect.
func encodeText(s string) (string, error) {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("encode %q: %w", s, err)
	}
	return out, nil
}
