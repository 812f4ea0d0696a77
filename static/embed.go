// Package static contains the images referenced by the landing page.
package static

import "embed"

//go:embed *.png
var FS embed.FS

// Images lists the embedded images by their URL path.
var Images = []string{
	"/home_manual.png",
	"/home_shelteraid.png",
}
