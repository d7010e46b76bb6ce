// Package views embeds the static pages served by the tracker.
package views

import _ "embed"

//go:embed index.html
var IndexHTML []byte
