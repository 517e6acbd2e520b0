//go:build ignore

// gen_tuning_example.go – run with:
//
//	go run scripts/gen_tuning_example.go
//
// Writes homestead-tuning.example.yaml with every knob at its default value,
// for players who want a starting point to edit. The defaults live in
// internal/tuning; this file is just a rendered copy.
package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/homestead/internal/tuning"
)

func main() {
	out, err := yaml.Marshal(tuning.Default())
	if err != nil {
		log.Fatal(err)
	}
	header := []byte("# Copy to homestead-tuning.yaml and edit. Missing keys keep their defaults.\n")
	if err := os.WriteFile("homestead-tuning.example.yaml", append(header, out...), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote homestead-tuning.example.yaml")
}
