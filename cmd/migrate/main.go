package main

import (
	"log"
	"os"

	"roombook/config"
	"roombook/helper"
)

var actions = map[string]func(*config.Config) error{
	"up":      helper.Up,
	"step-up": helper.StepUp,
	"down":    helper.Down,
	"drop":    helper.Drop,
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Migration action is required: up, step-up, down or drop")
	}

	action, ok := actions[os.Args[1]]
	if !ok {
		log.Fatalf("Unknown migration action %q. Use up, step-up, down or drop", os.Args[1])
	}

	if err := action(config.Get()); err != nil {
		log.Fatal(err)
	}
}
