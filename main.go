// Package main is the entry point for the bilicard application.
package main

import (
	"github.com/bilicard-cli/bilicard/cmd"
	"github.com/bilicard-cli/bilicard/config"
	"github.com/bilicard-cli/bilicard/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
