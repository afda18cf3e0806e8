package main

import (
	"fmt"
	"os"

	"github.com/M34031-1/high-load-course/config"
	"github.com/M34031-1/high-load-course/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}
	myApp := &app.App{}
	myApp.Initialize(cfg)
	defer myApp.Shutdown()
	myApp.Run()
}
