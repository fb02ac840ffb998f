// Command pipewright serves the plumbing site's content and contact API.
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"

	"github.com/dalemusser/pipewright/internal/app/bootstrap"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
