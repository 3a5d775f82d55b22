// Package version holds build identity for startup logging.
package version

const (
	AppName = "yomiage"
	Version = "0.2.0"
)
