package main

import "github.com/oshokin/emergency-response/cmd/emergency-check/cmd"

func main() {
	cmd.Execute()
}
