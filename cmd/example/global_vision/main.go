package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rpdg/winauto/backend"
	"github.com/rpdg/winauto/config"
	"github.com/rpdg/winauto/locate"
	"github.com/rpdg/winauto/logger"
	"github.com/rpdg/winauto/mouse"
	"github.com/rpdg/winauto/screen"
)

func main() {
	cfgPath := flag.String("config", "", "path to a winauto YAML config")
	timeout := flag.Duration("timeout", 10*time.Second, "how long to wait for the template")
	shot := flag.String("shot", "", "save a screenshot here (.png or .bmp) before searching")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: global_vision [flags] template.png")
		os.Exit(2)
	}
	template := flag.Arg(0)

	fmt.Println("=== winauto: Global Vision Example ===")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	zl, err := logger.New(cfg.Logging.Options())
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	a, err := backend.New(cfg, zl)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer a.Close()

	// 1. Screen Geometry
	monitors, err := screen.Monitors()
	if err == nil {
		for i, m := range monitors {
			fmt.Printf("   Monitor %d: %v (Primary: %v, DPI: %d)\n", i, m.Bounds, m.Primary, m.DPI)
		}
	}
	if *shot != "" {
		if img, err := screen.CapturePrimary(); err != nil {
			log.Printf("⚠️ capture: %v", err)
		} else if err := screen.Save(img, *shot); err != nil {
			log.Printf("⚠️ save: %v", err)
		}
	}

	// 2. Wait for the template to show up
	fmt.Printf("👉 Looking for %s...\n", template)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	points, err := a.Screen.WaitFor(ctx, template, locate.WithAll(true))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// 3. Visit every match
	for _, p := range points {
		fmt.Printf("   match at %v\n", p)
		if err := a.Input.ClickAt(p.X, p.Y, mouse.Left); err != nil {
			log.Printf("❌ click: %v", err)
		}
		a.Input.Wait(200 * time.Millisecond)
	}

	fmt.Println("=== Done ===")
}
