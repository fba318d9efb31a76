package main

import "github.com/yeisme/dirstat/cmd"

func main() {
	cmd.Execute()
}
