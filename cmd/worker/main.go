package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := newApp(log).Run(os.Args); err != nil {
		log.Fatal("command failed", zap.Error(err))
	}
}
