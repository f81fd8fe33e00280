/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/dizitask/citadel/cmd/citadel/cmd"

func main() {
	cmd.Execute()
}
