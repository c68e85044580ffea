// Command ticketdash is the terminal dashboard for the SwiftTickets Discord bot.
package main

import (
	"os"

	"github.com/swifttickets/ticketdash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
