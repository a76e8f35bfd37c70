package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/vito/twentythousandtonnesofcrudeoil"

	"github.com/slipway/slipway"
)

func main() {
	var cmd SlipwayCommand

	cmd.Version = func() {
		fmt.Printf("Slipway %s\n", slipway.Version)
		os.Exit(0)
	}

	parser := flags.NewParser(&cmd, flags.HelpFlag|flags.PassDoubleDash)
	parser.NamespaceDelimiter = "-"

	cmd.Server.WireDynamicFlags(parser.Command.Find("server"))

	twentythousandtonnesofcrudeoil.TheEnvironmentIsPerfectlySafe(parser, "SLIPWAY_")

	_, err := parser.Parse()
	handleError(err)
}

func handleError(err error) {
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		} else {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}

		os.Exit(1)
	}
}
