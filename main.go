package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"

	"github.com/atimics/signal-sub008/audio"
	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
	"github.com/atimics/signal-sub008/engine/status"
	"github.com/atimics/signal-sub008/event"
	"github.com/atimics/signal-sub008/parameter"
	"github.com/atimics/signal-sub008/render"
	"github.com/atimics/signal-sub008/system"
)

func main() {
	headless := flag.Bool("headless", false, "run without terminal view or audio")
	duration := flag.Float64("duration", 10, "headless run length in simulated seconds")
	asteroids := flag.Int("asteroids", 200, "asteroid count to seed")
	drones := flag.Int("drones", 20, "AI drone count to seed")
	mute := flag.Bool("mute", false, "disable audio")
	profileMode := flag.String("profile", "", "write cpu or mem profile")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	world := engine.NewWorld()
	reg := status.NewRegistry()
	sched := engine.NewScheduler(reg)

	player := seedScene(world, *asteroids, *drones)

	// Registration order is per-frame execution order: player input turns
	// into acceleration before physics integrates, collision needs
	// settled positions, render and audio need settled everything
	sched.Register("player", parameter.PhysicsHz, system.PlayerUpdate)
	sched.Register("physics", parameter.PhysicsHz, system.PhysicsUpdate)
	sched.Register("collision", parameter.CollisionHz, system.CollisionUpdate)
	sched.Register("ai", parameter.AIHz, system.AIUpdate)
	sched.Register("camera", parameter.CameraHz, system.CameraUpdate)

	if *headless {
		runHeadless(world, sched, *duration)
		sched.PrintStats(os.Stdout)
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init terminal: %v\n", err)
		os.Exit(1)
	}

	view := render.NewView(screen, reg)
	sched.Register("render", parameter.RenderHz, view.Update)

	var sound *audio.Engine
	if !*mute {
		sound = audio.NewEngine(44100)
		sched.Register("audio", parameter.AudioHz, sound.Update)
	}

	runInteractive(world, sched, screen, player)

	screen.Fini()
	sound.Close()
	sched.PrintStats(os.Stdout)
}

// runHeadless drives the loop with a fixed dt and no host pacing.
func runHeadless(world *engine.World, sched *engine.Scheduler, seconds float64) {
	dt := parameter.FrameUpdateInterval.Seconds()
	frames := int(seconds / dt)
	for i := 0; i < frames; i++ {
		world.Update(dt)
		sched.Update(world, dt)
	}
}

// runInteractive paces frames with a ticker and feeds terminal input
// into the player component until the user quits.
func runInteractive(world *engine.World, sched *engine.Scheduler, screen tcell.Screen, player core.Entity) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	dt := parameter.FrameUpdateInterval.Seconds()

	for {
		select {
		case ev := <-events:
			if !handleInput(world, player, ev) {
				return
			}
		case <-ticker.C:
			world.Update(dt)
			sched.Update(world, dt)
		}
	}
}

// handleInput maps keys onto the player-control component. Returns
// false on quit.
func handleInput(world *engine.World, player core.Entity, ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
		return false
	}

	pc := world.Player(player)
	if pc == nil {
		return true
	}

	switch key.Rune() {
	case 'q':
		return false
	case 'w':
		pc.Throttle += 0.1
		if pc.Throttle > 1 {
			pc.Throttle = 1
		}
	case 's':
		pc.Throttle -= 0.1
		if pc.Throttle < 0 {
			pc.Throttle = 0
		}
	case ' ':
		pc.Afterburner = !pc.Afterburner
	case '1', '2', '3':
		world.SwitchToCamera(int(key.Rune() - '1'))
	}
	return true
}

// seedScene populates the world: one player ship, two cameras, an
// asteroid belt and a handful of patrolling drones. Returns the player
// handle. Spawns that fail on capacity are logged and skipped; a
// smaller scene beats a dead process.
func seedScene(world *engine.World, asteroids, drones int) core.Entity {
	player := spawnShip(world)

	chase := world.CreateEntity()
	if chase != core.InvalidEntity && world.AddComponent(chase, component.KindCamera) {
		cam := world.Camera(chase)
		cam.Behavior = component.CameraChase
		cam.FollowTarget = player
		cam.FollowOffset = core.Vector3{X: 8, Y: 20, Z: 30}
		cam.FollowSmoothing = 0.05
		cam.Position = core.Vector3{X: 10, Y: 20, Z: 30}
		cam.MatricesDirty = true
		world.SetActiveCamera(chase)
	}

	fixed := world.CreateEntity()
	if fixed != core.InvalidEntity && world.AddComponent(fixed, component.KindCamera) {
		cam := world.Camera(fixed)
		cam.Behavior = component.CameraStatic
		cam.Position = core.Vector3{X: -30, Y: 25, Z: -30}
		cam.MatricesDirty = true
	}

	for i := 0; i < asteroids; i++ {
		if spawnAsteroid(world) == core.InvalidEntity {
			log.Printf("asteroid spawn dropped: world at capacity (%d live)", world.EntityCount())
			break
		}
	}
	for i := 0; i < drones; i++ {
		if spawnDrone(world) == core.InvalidEntity {
			log.Printf("drone spawn dropped: world at capacity (%d live)", world.EntityCount())
			break
		}
	}

	return player
}

func spawnShip(world *engine.World) core.Entity {
	e := world.CreateEntity()
	if e == core.InvalidEntity {
		return e
	}
	world.AddComponent(e, component.KindTransform)
	world.AddComponent(e, component.KindPhysics)
	world.AddComponent(e, component.KindCollision)
	world.AddComponent(e, component.KindRenderable)
	world.AddComponent(e, component.KindPlayer)

	tf := world.Transform(e)
	tf.Rotation = core.IdentityQuaternion()
	tf.Scale = core.Vector3{X: 1, Y: 1, Z: 1}

	body := world.Physics(e)
	body.Mass = 10
	body.Drag = 0.99

	col := world.Collision(e)
	col.Shape = component.ShapeSphere
	col.Radius = 1.5
	col.LayerMask = 0xFFFFFFFF

	r := world.Renderable(e)
	r.Glyph = '@'
	r.Color = 0xFFFFFF
	r.Visible = true

	pc := world.Player(e)
	pc.ControlsEnabled = true
	pc.AfterburnerEnergy = parameter.PlayerAfterburnerMax

	world.PushEvent(event.EntitySpawned, e)
	return e
}

func spawnAsteroid(world *engine.World) core.Entity {
	e := world.CreateEntity()
	if e == core.InvalidEntity {
		return e
	}
	world.AddComponent(e, component.KindTransform)
	world.AddComponent(e, component.KindPhysics)
	world.AddComponent(e, component.KindCollision)
	world.AddComponent(e, component.KindRenderable)

	tf := world.Transform(e)
	tf.Position = core.Vector3{
		X: rand.Float64()*400 - 200,
		Y: rand.Float64()*40 - 20,
		Z: rand.Float64()*400 - 200,
	}
	tf.Rotation = core.IdentityQuaternion()
	tf.Scale = core.Vector3{X: 1, Y: 1, Z: 1}

	body := world.Physics(e)
	body.Mass = 100
	body.Drag = 1.0
	body.Velocity = core.Vector3{
		X: rand.Float64()*2 - 1,
		Z: rand.Float64()*2 - 1,
	}

	col := world.Collision(e)
	col.Shape = component.ShapeSphere
	col.Radius = 1 + rand.Float64()*3
	col.LayerMask = 0xFFFFFFFF

	r := world.Renderable(e)
	r.Glyph = '*'
	r.Color = 0x888888
	r.Visible = true

	return e
}

func spawnDrone(world *engine.World) core.Entity {
	e := spawnAsteroid(world)
	if e == core.InvalidEntity {
		return e
	}
	if !world.AddComponent(e, component.KindAI) {
		return e
	}

	ai := world.AI(e)
	ai.State = component.AIIdle
	ai.UpdateFrequency = parameter.AIFarHz

	r := world.Renderable(e)
	r.Glyph = 'd'
	r.Color = 0xFF5544

	world.PushEvent(event.EntitySpawned, e)
	return e
}
