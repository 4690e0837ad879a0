// Package main provides the armlink CLI: it validates robot motion
// documents and generates controller programs from them.
package main

func main() {
	Execute()
}
