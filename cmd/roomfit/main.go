// roomfit — Furniture Fit Checker
//
// A command-line tool that checks whether a piece of furniture fits
// comfortably in a room, accounting for the clearance a person needs
// to actually use it.
//
// Build:
//   go build -o roomfit ./cmd/roomfit
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o roomfit.exe ./cmd/roomfit
//   GOOS=darwin  GOARCH=arm64 go build -o roomfit-darwin ./cmd/roomfit

package main

import "roomfit/internal/cli"

func main() {
	cli.Execute()
}
