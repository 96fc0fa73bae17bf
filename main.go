package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ytget/bitfiles/internal/gui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	manifest := ""
	if len(os.Args) > 1 {
		manifest = os.Args[1]
	}

	code, err := gui.Start(context.Background(), gui.Options{Version: version, Manifest: manifest})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
