package main

import "github.com/KaramelBytes/datagen-cli/cmd"

func main() {
	cmd.Execute()
}
