/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/symceil/symceil/pkg/cli"
)

func main() {
	cli.Execute()
}
