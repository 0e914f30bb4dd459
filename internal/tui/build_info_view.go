// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-bank-clients/models"
)

func buildInfoLines(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: bank-clients\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return b.String()
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	return renderPage("About", buildInfoLines(info), "esc: back")
}

// showExitScreen prints the sign-off banner.
func (t *TUI) showExitScreen() {
	t.printLn("")
	t.printLn("%s", centered("Program ended :)", bannerWidth))
	t.printDivider(bannerWidth, "_")
	t.printLn("")
	for _, line := range strings.Split(buildInfoLines(t.buildInfo), "\n") {
		t.printLn("\t%s", line)
	}
	t.printDivider(bannerWidth, "_")
}
