// Package locales embeds the module's message files.
package locales

import "embed"

//go:embed *.json
var FS embed.FS
