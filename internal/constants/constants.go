// Package constants holds values shared by the front ends and config.
package constants

// AppName names the data directory (~/.config/glance) and the log file.
const AppName = "glance"

// SyntaxTheme is the default Chroma theme for text colours and the status
// bar palette. Any name known to chroma/styles works, e.g. monokai,
// dracula, nord, gruvbox, github (light) or solarized-light.
const SyntaxTheme = "github-dark"

// StatusRows is the height of the status bar under the viewport.
const StatusRows = 1

// WheelStep is how many rows or columns one mouse wheel notch scrolls.
const WheelStep = 3
