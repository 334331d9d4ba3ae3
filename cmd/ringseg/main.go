// Command ringseg lays out segmented ring templates and side profiles
// as vector drawings.
package main

import "github.com/soypat/ringseg/cmd/ringseg/cmd"

func main() {
	cmd.Execute()
}
