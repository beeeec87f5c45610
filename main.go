package main

import "recharge-portal/internal/cli"

func main() {
	cli.Execute()
}
