package main

import "github.com/theirongolddev/tiptrack/cmd"

func main() {
	cmd.Execute()
}
