package formfields

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.css
var embeddedAssets embed.FS

// StylesheetName is the file name of the default field stylesheet inside
// AssetsFS.
const StylesheetName = "formfields.css"

// AssetsFS exposes the default stylesheet for the field markup (form-group,
// hint, error and input-error classes) so applications can serve it without a
// frontend build step.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formfields.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
