package main

import "github.com/superapp/accounts/internal/cli"

func main() {
	cli.Execute()
}
