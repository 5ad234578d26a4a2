package main

import "abicodec/cmd/abi-cli/cmd"

func main() {
	cmd.Execute()
}
