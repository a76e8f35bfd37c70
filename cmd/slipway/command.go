package main

import (
	"github.com/slipway/slipway/yard/yardcmd"
)

type SlipwayCommand struct {
	Version func() `short:"v" long:"version" description:"Print the version of Slipway and exit"`

	Server yardcmd.RunCommand `command:"server" description:"Run the build orchestration server."`
}
