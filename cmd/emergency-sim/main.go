package main

import "github.com/oshokin/emergency-response/cmd/emergency-sim/cmd"

func main() {
	cmd.Execute()
}
