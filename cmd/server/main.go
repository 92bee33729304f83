package main

import (
	"log"
	"wager_backend/internal/app"
)

func main() {
	a := app.NewApp()
	log.Fatal(a.Run())
}
