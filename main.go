package main

import "github.com/ifancyabroad/the-nightingames/cmd"

func main() {
	cmd.Execute()
}
