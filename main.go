package main

import (
	"log"

	"github.com/samuelfneumann/cabdriver/cli"
)

func main() {
	if err := cli.GetRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
