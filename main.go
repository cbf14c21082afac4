package main

import "mediaslim/cmd"

func main() {
	cmd.Execute()
}
