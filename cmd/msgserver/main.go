package main

import (
	"fmt"
	"os"

	"github.com/yndnr/msgserver-go/internal/cli/command"
	"github.com/yndnr/msgserver-go/internal/server/lineserver"
)

func main() {
	// Exit coders terminate inside Run; what remains is a command line error.
	if err := command.ServerApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(lineserver.ExitUsage)
	}
}
