package commands

import (
	"os"
	"runtime"
)

var emojiEnabled = emojiSupported(runtime.GOOS, os.Getenv("SESSIONNAME"))

// emojiSupported guesses if the terminal can render emojis.
// Raw cmd and powershell set SESSIONNAME, the windows terminal does not
func emojiSupported(goos string, sessionName string) bool {
	return goos != "windows" || sessionName == ""
}

// SetEmoji turns emojis off (or back on if the terminal supports them)
func SetEmoji(on bool) {
	emojiEnabled = on && emojiSupported(runtime.GOOS, os.Getenv("SESSIONNAME"))
}

// Emoji returns e if the current terminal (probably) supports emojis
func Emoji(e string) string {
	if emojiEnabled {
		return e
	}
	return ""
}
