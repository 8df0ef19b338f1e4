package noted

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version exposes the version of noted.
var Version = strings.TrimSpace(rawVersion)
