package main

import "artquest/cmd/aq/root"

func main() {
	root.Execute()
}
