// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/pipewright/internal/app/store/sitecontent"
)

// DBDeps holds backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: Startup, BuildHandler, and Shutdown. This app has no external
// databases; its one backend is the validated content document served by
// the sitecontent store.
type DBDeps struct {
	// Content is the cached, schema-checked site content document.
	Content *sitecontent.Store
}
