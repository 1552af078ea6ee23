package render

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
)

// advance of one glyph relative to the font size, used only if the Go fonts
// fail to load
const glyphWidth = 0.55

// measureFaces is shared by every layout pass; faces are not safe for
// concurrent use, so it is guarded by measureMu.
var (
	measureMu    sync.Mutex
	measureFaces = faces{}
)

// TextWidth measures s with the Go font face WritePNG draws st with, plus
// letter-spacing. Lines laid out with it never overflow in raster output.
func TextWidth(s string, st Style) float64 {
	n := float64(utf8.RuneCountInString(s))
	if err := loadFonts(); err != nil {
		return n*st.Size*glyphWidth + n*st.Tracking
	}
	measureMu.Lock()
	face, _ := measureFaces.get(st)
	adv := font.MeasureString(face, s)
	measureMu.Unlock()
	return float64(adv)/64 + n*st.Tracking
}
