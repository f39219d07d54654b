// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/senaicommunity/workspace-service/cmd"
)

func main() {
	cmd.Execute()
}
