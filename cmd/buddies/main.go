// Command buddies prints a round-robin pairing schedule for a closeness CSV.
//
//	buddies members.csv -m --format table
package main

import "github.com/katalvlaran/buddies/internal/cli"

func main() {
	cli.Execute()
}
