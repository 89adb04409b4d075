//go:build !cgo

package main

import "log"

func main() {
	log.Fatal("viewer needs cgo to open an OpenGL window, use the glmesh command to export scenes instead")
}
