// Package constant holds build metadata injected with -ldflags.
package constant

var (
	Version   = "dev"
	BuildTime = "unknown"
)
