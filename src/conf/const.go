// Package conf contains the constants that are used across packages for
// configuring versions and limits.
package conf

import (
	"fmt"
	"time"
)

const (
	// VERSION is the version of the probe application.
	VERSION = "Probe 0.1.0"
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
	// MAXPATHDEPTH max amount of segments in a single path expression.
	MAXPATHDEPTH = 128
	// MAXDOCDEPTH max nesting depth accepted while decoding a document.
	MAXDOCDEPTH = 256
	// TIMEFORMAT is the default strftime format for rendering record timestamps.
	TIMEFORMAT = "%Y-%m-%d %H:%M:%S"
)

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v Copyright (C) %v", VERSION, time.Now().Year())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return fmt.Sprintf("Copyright (C) %v", time.Now().Year())
}
