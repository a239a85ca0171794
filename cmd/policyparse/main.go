package main

import "github.com/jdutoit/policyparse/internal/cli"

func main() {
	cli.Execute()
}
