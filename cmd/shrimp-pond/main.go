package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shrimp-pond/audio"
	"github.com/lixenwraith/shrimp-pond/config"
	"github.com/lixenwraith/shrimp-pond/core"
	"github.com/lixenwraith/shrimp-pond/engine"
	"github.com/lixenwraith/shrimp-pond/events"
	"github.com/lixenwraith/shrimp-pond/input"
	"github.com/lixenwraith/shrimp-pond/parameter"
	"github.com/lixenwraith/shrimp-pond/pond"
	"github.com/lixenwraith/shrimp-pond/render"
	"github.com/lixenwraith/shrimp-pond/vmath"
)

var (
	sceneFlag    = flag.String("scene", "", "YAML pond scene file")
	backdropFlag = flag.String("backdrop", "", "ASCII art backdrop file")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
	seedFlag     = flag.Int64("seed", 0, "Randomness seed (0 = time-based)")
)

func main() {
	// Panic recovery: the terminal must be restored even when the pond crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	scene, err := config.Load(*sceneFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = scene.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	backdropPath := *backdropFlag
	if backdropPath == "" {
		backdropPath = scene.Backdrop
	}
	var backdrop *render.Backdrop
	if backdropPath != "" {
		backdrop, err = render.LoadBackdrop(backdropPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load backdrop: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	// Crash-safe goroutines restore the terminal before printing the trace
	core.SetResetHook(func() {
		screen.Fini()
	})
	defer screen.Fini()

	sound := audio.NewSoundManager()
	if scene.AudioEnabled() {
		// Machines without an audio device run silent
		_ = sound.Initialize()
	}
	if *muteFlag {
		sound.ToggleMute()
	}
	defer sound.Cleanup()

	now := time.Now()
	renderer := render.NewRenderer(screen, seed, now)
	renderer.SetBackdrop(backdrop)

	reg := pond.NewRegistry()
	sink := pond.MultiSink{sound}
	spawn(reg, scene, renderer, seed, now, sink)

	width, height := renderer.Size()
	bounds := worldBounds(width, height)
	routerCfg := scene.RouterConfig()
	routerCfg.Bounds = bounds
	router := pond.NewRouter(reg, reg, routerCfg, uint64(seed))

	queue := events.NewQueue()
	input.StartPump(screen, queue)

	var loop *engine.Loop
	loop = engine.NewLoop(engine.LoopConfig{
		Interval: parameter.TickInterval,
		Queue:    queue,
		OnEvent: func(ev events.Event) {
			switch ev.Type {
			case events.EventQuit:
				loop.Stop()
			case events.EventPointerDown:
				p := render.CellToWorld(ev.X, ev.Y)
				renderer.AddRipple(p, ev.Time)
				router.PointerDown(p, ev.Time)
			case events.EventToggleSound:
				sound.ToggleMute()
			case events.EventTogglePause:
				router.SetPaused(!router.Paused())
			case events.EventResize:
				renderer.Resize()
				w, h := renderer.Size()
				*bounds = *worldBounds(w, h)
			}
		},
		OnTick: func(now time.Time, dt time.Duration) {
			reg.Update(now, dt)
		},
		OnFrame: func(now time.Time) {
			renderer.Frame(reg, now, router.Paused(), sound.Muted())
		},
	})

	loop.Run()
}

// worldBounds keeps move targets on visible water, above the status row
func worldBounds(width, height int) *pond.Rect {
	min := render.CellToWorld(0, 0)
	max := render.CellToWorld(width-1, height-2)
	return &pond.Rect{MinX: min.X, MinY: min.Y, MaxX: max.X, MaxY: max.Y}
}

// spawn populates the registry from the scene: pinned placements when
// given, otherwise random cells inside the spawn margin
func spawn(reg *pond.Registry, scene *config.Scene, renderer *render.Renderer, seed int64, now time.Time, sink pond.CueSink) {
	cfg := scene.AgentConfig()

	if len(scene.Placement) > 0 {
		for _, pl := range scene.Placement {
			p := render.CellToWorld(pl.X, pl.Y)
			reg.Spawn(cfg, pond.Pose{
				X:       p.X,
				Y:       p.Y,
				Heading: vmath.FromDegrees(pl.HeadingDegrees),
				Scale:   vmath.Scale,
			}, now, sink)
		}
		return
	}

	width, height := renderer.Size()
	rng := vmath.NewFastRand(uint64(seed))
	margin := parameter.SpawnMarginCells
	spanX := width - 2*margin
	spanY := height - 1 - 2*margin
	if spanX < 1 {
		spanX = 1
	}
	if spanY < 1 {
		spanY = 1
	}

	count := scene.Shrimp
	if count <= 0 {
		count = parameter.DefaultShrimpCount
	}
	for i := 0; i < count; i++ {
		cx := margin + rng.Intn(spanX)
		cy := margin + rng.Intn(spanY)
		p := render.CellToWorld(cx, cy)
		heading := int64(rng.Next() % vmath.Scale)
		reg.Spawn(cfg, pond.Pose{
			X:       p.X,
			Y:       p.Y,
			Heading: heading,
			Scale:   vmath.Scale,
		}, now, sink)
	}
}
