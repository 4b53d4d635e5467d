package main

import "github.com/neutral-Stage/Stroll/internal/game"

func main() {
	game.Run()
}
