// Package clipboard adapts the system clipboard to form.Clipboard.
package clipboard

import "github.com/atotto/clipboard"

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API).
type System struct{}

// Available reports whether a clipboard backend was found.
func (System) Available() bool {
	return !clipboard.Unsupported
}

func (System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
