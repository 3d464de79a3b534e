package main

import "github.com/yeisme/wcagcheck/cmd"

func main() {
	cmd.Execute()
}
