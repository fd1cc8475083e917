package main

import "metakg/predtree/cmd"

func main() {
	cmd.Execute()
}
