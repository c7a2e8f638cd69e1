package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{" __        __    _  __ ____           _ ", "#34d399"},
	{" \\ \\      / /__ | |/ _|  _ \\ __ _  __| |", "#2dd4bf"},
	{"  \\ \\ /\\ / / _ \\| | |_| |_) / _` |/ _` |", "#22d3ee"},
	{"   \\ V  V / (_) | |  _|  __/ (_| | (_| |", "#38bdf8"},
	{"    \\_/\\_/ \\___/|_|_| |_|   \\__,_|\\__,_|", "#60a5fa"},
}

// PrintBanner writes the WolfPad banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  AI gateway "+version).Faint())
	fmt.Fprintln(w)
}

// ErrorText styles msg as an error for terminal output.
func ErrorText(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String("Error: " + msg).Foreground(p.Color("#f87171")).Bold().String()
}
