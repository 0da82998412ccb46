package main

import "quoraprofiler-backend/cmd/quora-cli/cmd"

func main() {
	cmd.Execute()
}
