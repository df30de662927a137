package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rpdg/winauto/backend"
	"github.com/rpdg/winauto/config"
	"github.com/rpdg/winauto/keyboard"
	"github.com/rpdg/winauto/logger"
	"github.com/rpdg/winauto/mouse"
)

func main() {
	cfgPath := flag.String("config", "", "path to a winauto YAML config")
	flag.Parse()

	fmt.Println("=== winauto: Record & Replay Example ===")

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
	in := a.Input

	w, h, err := in.ScreenSize()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("🖥️  Primary screen: %dx%d\n", w, h)

	// 1. Record a small square around the screen center.
	fmt.Println("👉 Recording...")
	cx, cy := w/2, h/2
	in.BeginRecord()
	for _, p := range [][2]int{{cx - 100, cy - 100}, {cx + 100, cy - 100}, {cx + 100, cy + 100}, {cx - 100, cy + 100}} {
		if err := in.MoveTo(p[0], p[1]); err != nil {
			log.Printf("❌ move: %v", err)
		}
		in.Wait(200 * time.Millisecond)
	}
	if err := in.Click(mouse.Left); err != nil {
		log.Printf("❌ click: %v", err)
	}
	if r := in.PressNames([]string{"h", "i", "enter"}); !r.OK() {
		log.Printf("⚠️ %d key presses failed: %v", r.Failed, r.Err)
	}
	recorded := in.EndRecord()
	fmt.Printf("✅ Recorded %d events (%s of waits)\n", recorded.Primitives(), recorded.Duration())

	// 2. Replay it.
	fmt.Println("👉 Replaying...")
	in.WaitDefault()
	r := in.Execute(recorded)
	fmt.Printf("✅ Replayed: %d sent, %d failed\n", r.Completed, r.Failed)

	// 3. Park the cursor and type.
	if err := in.DragTo(cx, cy, mouse.Left); err != nil {
		log.Printf("❌ drag: %v", err)
	}
	if err := in.Type("Hello from winauto!"); err != nil {
		log.Printf("❌ type: %v", err)
	}
	in.Press(keyboard.KeyEnter)

	fmt.Println("=== Done ===")
}
