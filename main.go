package main

import "github.com/IntroGM-2024/day-3-exercises/cmd"

func main() {
	cmd.Execute()
}
