package main

import (
	"meetbook/internal/server"
)

func main() {
	server.NewServer().Run()
}
