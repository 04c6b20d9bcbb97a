// Package main starts the PadNexus input engine and UI server.
package main

import "flag"

// main is the entrypoint for the PadNexus server.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	listGames := flag.Bool("list-games", false, "Scan the game library, print it, and exit")
	flag.Parse()

	var err error
	if *listGames {
		err = runListGames(*debug)
	} else {
		err = run(*debug)
	}
	if err != nil {
		logFatal(err)
	}
}
