// Package static holds the website's embedded stylesheet and scripts.
package static

import "embed"

//go:embed styles.css js
var FS embed.FS
