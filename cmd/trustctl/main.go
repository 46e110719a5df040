package main

import (
	"log"

	"github.com/fleetmgr/trustctl/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
