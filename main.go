package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"powersnake/ai"
	"powersnake/game"
	"powersnake/game/types"
	"powersnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

const (
	spawnInterval = 4 * time.Second
	spawnChance   = 0.6
	volumeStep    = 0.1
)

func main() {
	width := flag.Int("width", 30, "Board width in cells")
	height := flag.Int("height", 20, "Board height in cells")
	obstacles := flag.Int("obstacles", types.DefaultObstacles, "Number of obstacles")
	fps := flag.Int("fps", types.DefaultTickRate, "Frames per second driving the engine")
	speed := flag.Float64("speed", types.BaseSpeed, "Base speed in moves per second")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	music := flag.String("music", "", "Background music file")
	volume := flag.Float64("volume", 0.5, "Music volume 0..1")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent steer")
	epsilon := flag.Float64("epsilon", 0.05, "Autopilot exploration rate")
	train := flag.Int("train", 0, "Train the agent headless for N episodes and exit")
	qtable := flag.String("qtable", "", "Q-table file to load and save")
	debug := flag.Bool("debug", false, "Write logs to logs/powersnake.log")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	opts := game.DefaultOptions()
	opts.BaseSpeed = *speed
	opts.Seed = *seed
	engine := game.NewEngine(opts)

	var agent *ai.QLearning
	if *autopilot || *train > 0 {
		agentSeed := *seed
		if agentSeed == 0 {
			agentSeed = uint64(time.Now().UnixNano())
		}
		agent = ai.NewQLearning(rand.New(rand.NewSource(agentSeed+1)), *epsilon)
		if *qtable != "" {
			if err := agent.LoadQTable(*qtable); err != nil && !errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "loading q-table: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if *train > 0 {
		os.Exit(runTraining(engine, agent, *train, *width, *height, *obstacles, *qtable))
	}

	if err := engine.Initialize(*width, *height, *obstacles, *fps); err != nil {
		fmt.Fprintf(os.Stderr, "initializing board: %v\n", err)
		os.Exit(1)
	}

	rl.InitWindow(960, 720, "Power Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(*fps))

	audio, err := ui.NewAudio(*music, float32(*volume))
	if err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer audio.Close()

	renderer := ui.NewRenderer()
	lastSpawn := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		quit := false
		for _, cmd := range ui.PollCommands() {
			switch cmd {
			case ui.CommandStart:
				if err := engine.Start(); err != nil {
					log.Printf("start: %v", err)
				}
			case ui.CommandTogglePause:
				togglePause(engine)
			case ui.CommandRestart:
				if agent != nil && engine.State() != game.StateGameOver {
					agent.AbandonEpisode(engine.Snapshot())
				}
				if err := engine.Initialize(*width, *height, *obstacles, *fps); err != nil {
					log.Printf("restart: %v", err)
				}
			case ui.CommandVolumeUp:
				audio.SetVolume(audio.Volume() + volumeStep)
			case ui.CommandVolumeDown:
				audio.SetVolume(audio.Volume() - volumeStep)
			case ui.CommandQuit:
				quit = true
			}
		}
		if quit {
			break
		}

		if agent == nil || !*autopilot {
			for _, dir := range ui.PollDirections() {
				engine.SetDirection(dir)
			}
		}

		if engine.State() == game.StateRunning && time.Since(lastSpawn) >= spawnInterval {
			engine.TrySpawnPowerup(spawnChance)
			lastSpawn = time.Now()
		}

		moved, err := engine.Tick()
		if err != nil && agent != nil {
			agent.EndEpisode()
		}
		if moved && *autopilot && agent != nil {
			engine.SetDirection(agent.Act(engine.Snapshot()))
		}

		audio.SetPlaying(engine.State() == game.StateRunning)
		audio.Update()

		renderer.Draw(engine.Snapshot(), engine.HUD(), audio.Volume())
	}

	if agent != nil && *qtable != "" {
		if err := agent.SaveQTable(*qtable); err != nil {
			log.Printf("saving q-table: %v", err)
		}
	}
	session := engine.Session()
	log.Printf("session over: %d games, best %d, average %.1f, median %.1f",
		session.GamesPlayed, session.HighScore, session.AverageScore, session.MedianScore)
}

func togglePause(engine *game.Engine) {
	var err error
	switch engine.State() {
	case game.StateRunning:
		err = engine.Pause()
	case game.StatePaused:
		err = engine.Resume()
	default:
		return
	}
	if err != nil {
		log.Printf("pause toggle: %v", err)
	}
}

func runTraining(engine *game.Engine, agent *ai.QLearning, episodes, width, height, obstacles int, qtable string) int {
	stats, err := ai.Train(engine, agent, ai.TrainConfig{
		Episodes:    episodes,
		MaxMoves:    width * height * 4,
		Width:       width,
		Height:      height,
		Obstacles:   obstacles,
		SpawnEvery:  types.BaseSpeed * 4,
		SpawnChance: spawnChance,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "training: %v\n", err)
		return 1
	}
	fmt.Printf("trained %d episodes: best %d, average %.2f, q-states %d\n",
		stats.Episodes, stats.BestScore, stats.AverageScore(), len(agent.QTable))

	if qtable != "" {
		if err := agent.SaveQTable(qtable); err != nil {
			fmt.Fprintf(os.Stderr, "saving q-table: %v\n", err)
			return 1
		}
	}
	return 0
}
