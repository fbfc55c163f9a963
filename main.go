package main

import "github.com/tayloree/restock/cmd"

func main() {
	cmd.Execute()
}
