package main

import "github.com/KaramelBytes/kbtool-cli/cmd"

func main() {
	cmd.Execute()
}
