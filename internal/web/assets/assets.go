package assets

import "embed"

// Templates шаблоны страниц frontend
//
//go:embed templates
var Templates embed.FS

// Static статические файлы (js, css)
//
//go:embed static
var Static embed.FS
