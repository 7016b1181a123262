package main

import (
	"camp-signup-system/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
