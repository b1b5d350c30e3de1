package qr

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var (
	foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
)

// TeamURL is the canonical link printed on a team's QR code.
func TeamURL(publicURL string, teamID int) string {
	return fmt.Sprintf("%s/team/%d", strings.TrimRight(publicURL, "/"), teamID)
}

// PNG encodes url as a square PNG of size pixels, light modules on a dark background.
func PNG(url string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	code.ForegroundColor = foreground
	code.BackgroundColor = background
	return code.PNG(size)
}
