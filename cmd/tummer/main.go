// cmd/tummer/main.go
package main

import (
	"github.com/kloetzl/TUMmer/internal/app"
	"github.com/kloetzl/TUMmer/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
