// Package topics holds the markdown help topics shown by 'qualia help'.
package topics

import "embed"

// FS contains every topic file
//
//go:embed *.md
var FS embed.FS
