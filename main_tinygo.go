//go:build tinygo

package main

import (
	"tivagc/app"
	"tivagc/hal"
)

func main() {
	app.Run(hal.New())
}
