// cmd/orientseq/main.go
package main

import (
	"orientseq/internal/app"
	"orientseq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
