package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/internal/delivery/cli"
)

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	if err := cli.Execute(app); err != nil {
		os.Exit(1)
	}
}
