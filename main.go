package main

import "sl10n/cmd"

func main() {
	cmd.Execute()
}
