// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/smscli/models"
)

// buildInfoLines is what /version writes to the log view.
func buildInfoLines(info models.AppBuildInfo) []string {
	return []string{
		"smscli " + info.BuildVersion(),
		"Build date: " + info.BuildDate(),
		"Build commit: " + info.BuildCommit(),
	}
}
