// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

// notAvailable replaces build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags "-X ...".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values become "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Print writes the three build lines printed by both binaries on startup.
func (a AppBuildInfo) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Build version: %s\n", a.buildVersion)
	_, _ = fmt.Fprintf(w, "Build date: %s\n", a.buildDate)
	_, _ = fmt.Fprintf(w, "Build commit: %s\n", a.buildCommit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
