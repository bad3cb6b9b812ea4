package main

import (
	"log"
	"os"
	osalias "os"
)

func helper() {
	os.Exit(2)
}

func main() {
	defer helper()

	os.Exit(1)          // want "direct call os.Exit is not allowed in main function"
	osalias.Exit(1)     // want "direct call os.Exit is not allowed in main function"
	log.Fatal("x")      // want "direct call log.Fatal is not allowed in main function"
	log.Fatalf("%d", 1) // want "direct call log.Fatalf is not allowed in main function"

	go func() {
		os.Exit(3)
	}()
	log.Println("ok")
}
