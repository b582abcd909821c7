package main

import (
	"fmt"
	"os"

	"github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
)

func main() {
	tesseract4d.Debug = os.Getenv("DEBUG") != ""
	tesseract4d.Turntable = os.Getenv("GIF") != ""

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := tesseract4d.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
