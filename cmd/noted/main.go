package main

import (
	"os"

	"github.com/aretw0/noted/internal/platform"
)

func main() {
	os.Exit(Execute(os.Args[1:], platform.OSEnv()))
}
