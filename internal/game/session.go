// Package game wires the modules, the collision engine and the score
// policy into one playable session.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/lifecycle"
	"github.com/vovakirdan/tui-asteroids/internal/modules/asteroid"
	"github.com/vovakirdan/tui-asteroids/internal/modules/enemy"
	"github.com/vovakirdan/tui-asteroids/internal/modules/player"
	"github.com/vovakirdan/tui-asteroids/internal/modules/weapon"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/score"
)

// Module priorities. Lower runs first.
const (
	PriorityPlayer    = 10
	PriorityWeapon    = 20
	PriorityEnemy     = 30
	PriorityAsteroid  = 40
	PriorityCollision = 100
)

// compactEvery sweeps destroyed entities about once a second at 60 ticks.
const compactEvery = 60

// Policy decides when scores are sent to the score service.
type Policy struct {
	OnIncrease bool // Submit every time the score goes up
	OnGameOver bool // Submit the final score once, when it is above zero
}

// DefaultPolicy submits on every increase and at game over.
func DefaultPolicy() Policy {
	return Policy{OnIncrease: true, OnGameOver: true}
}

// Options configures a Session.
type Options struct {
	Config     config.GameConfig
	Preset     config.DifficultyPreset
	Scores     score.Service // nil disables submissions
	PlayerName string
	Policy     Policy
	Logger     *log.Logger
}

// Session is one game: a registry of modules installed on a manager, plus
// the scoring and difficulty rules around it.
type Session struct {
	opts       Options
	gc         config.GameConfig
	logger     *log.Logger
	difficulty *config.DifficultyManager
	reporter   *score.Reporter

	cfg        core.RuntimeConfig
	worldW     float64
	worldH     float64
	rng        *rand.Rand
	reg        *registry.Registry
	mgr        *engine.Manager
	collisions *collision.Engine
	board      *collision.Scoreboard
	factory    *asteroid.Factory
	weapons    *weapon.Service
	ships      *player.Plugin
	controller *player.Controller
	components lifecycle.Group

	ticks          int
	lastScore      int
	gameOver       bool
	paused         bool
	finalSubmitted bool
	leaderboard    []score.ScoreData
}

// New creates a session. Call Reset before stepping it.
func New(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.PlayerName == "" {
		opts.PlayerName = opts.Config.Service.PlayerName
	}
	if opts.PlayerName == "" {
		opts.PlayerName = "Player"
	}
	preset := opts.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}

	gc := opts.Config
	config.ApplyPreset(&gc, preset)

	difficulty := config.NewDifficultyManager(gc.Difficulty)
	difficulty.SetInitialLevel(config.InitialLevelForPreset(preset))

	s := &Session{
		opts:       opts,
		gc:         gc,
		logger:     opts.Logger,
		difficulty: difficulty,
		reporter:   score.NewReporter(opts.Scores, 32, opts.Logger),
		board:      &collision.Scoreboard{},
	}
	return s
}

// ID returns the identifier used for screenshots and logs.
func (s *Session) ID() string {
	return "asteroids"
}

// Title returns the display name.
func (s *Session) Title() string {
	return "Asteroids"
}

// PlayerName returns the name scores are submitted under.
func (s *Session) PlayerName() string {
	return s.opts.PlayerName
}

// Reset tears down the current game and builds a fresh one from cfg.
// The same seed and inputs always replay the same game.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.teardown()

	if cfg.WorldW <= 0 {
		cfg.WorldW = s.gc.World.Width
	}
	if cfg.WorldH <= 0 {
		cfg.WorldH = s.gc.World.Height
	}
	s.cfg = cfg
	s.worldW, s.worldH = cfg.WorldW, cfg.WorldH
	s.rng = rand.New(rand.NewSource(cfg.Seed))

	s.board.Reset()
	s.ticks = 0
	s.lastScore = 0
	s.gameOver = false
	s.paused = false
	s.finalSubmitted = false
	s.leaderboard = nil

	s.build()

	if err := s.components.InitAll(); err != nil {
		s.logger.Error("component init failed", "err", err)
	}
	if err := s.components.StartAll(); err != nil {
		s.logger.Error("component start failed", "err", err)
	}
	if err := s.mgr.Initialize(); err != nil {
		s.logger.Error("initialize failed", "err", err)
	}

	s.logger.Info("game reset", "seed", cfg.Seed, "modules", len(s.reg.Names()), "entities", s.mgr.World().Len())
}

// build creates every module and installs it on a new manager.
func (s *Session) build() {
	gc := s.gc
	w, h := s.worldW, s.worldH

	s.factory = asteroid.NewFactory(gc.Asteroid, s.rng)
	s.weapons = weapon.NewService(gc.Weapon)
	brain := enemy.NewBrain(gc.Enemy, s.rng)

	s.ships = player.NewPlugin(gc.Player, weapon.ClampLevel(gc.Weapon.Level), w, h)
	s.controller = player.NewController()

	enemySpawner := enemy.NewSpawner(brain, s.rng, gc.Enemy.EdgeMargin, w, h,
		gc.Enemy.SpawnInterval, gc.Enemy.MaxActive, s.logger.WithPrefix("enemy"))
	enemySpawner.SetPace(func() (float64, int) {
		sc := s.board.Score()
		return s.difficulty.SpawnInterval(gc.Enemy.SpawnInterval, sc, s.ticks),
			s.difficulty.MaxEnemies(gc.Enemy.MaxActive, sc, s.ticks)
	})

	asteroidSpawner := asteroid.NewSpawner(s.factory, s.rng, w, h,
		gc.Asteroid.SpawnInterval, gc.Asteroid.MaxActive, s.logger.WithPrefix("asteroid"))
	asteroidSpawner.SetPace(func() (float64, int) {
		sc := s.board.Score()
		return s.difficulty.SpawnInterval(gc.Asteroid.SpawnInterval, sc, s.ticks),
			s.difficulty.MaxAsteroids(gc.Asteroid.MaxActive, sc, s.ticks)
	})

	s.collisions = collision.New(collision.WithLogger(s.logger.WithPrefix("collision")))
	collision.Defaults(s.collisions, s.board, s.factory, s.rules())

	s.reg = registry.New()
	s.reg.MustRegister(registry.Module{
		Name:       "player",
		Priority:   PriorityPlayer,
		Source:     s.ships,
		Processors: []engine.EntityProcessor{
			weapon.NewCooldownProcessor(s.weapons),
			s.controller,
			player.NewProcessor(gc.Player, s.weapons, w, h),
		},
	})
	s.reg.MustRegister(registry.Module{
		Name:       "weapon",
		Priority:   PriorityWeapon,
		Processors: []engine.EntityProcessor{weapon.NewBulletProcessor(w, h)},
	})
	s.reg.MustRegister(registry.Module{
		Name:       "enemy",
		Priority:   PriorityEnemy,
		Source:     enemy.NewPlugin(brain, s.rng, gc.Enemy.Initial, gc.Enemy.EdgeMargin, w, h),
		Processors: []engine.EntityProcessor{enemy.NewProcessor(brain, w, h), enemySpawner},
		Component:  enemySpawner.Component(),
	})
	s.reg.MustRegister(registry.Module{
		Name:       "asteroid",
		Priority:   PriorityAsteroid,
		Source:     asteroid.NewPlugin(s.factory, s.rng, gc.Asteroid.Initial, gc.Asteroid.SafeZone, w, h),
		Processors: []engine.EntityProcessor{asteroid.NewProcessor(w, h), asteroidSpawner},
		Component:  asteroidSpawner.Component(),
	})
	s.reg.MustRegister(registry.Module{
		Name:           "collision",
		Priority:       PriorityCollision,
		PostProcessors: []engine.PostProcessor{s.collisions},
	})

	s.mgr = engine.NewManager(
		engine.WithLogger(s.logger.WithPrefix("engine")),
		engine.WithCompaction(compactEvery),
	)
	s.reg.Install(s.mgr)
	s.components = s.reg.Components()
}

func (s *Session) rules() collision.Rules {
	return collision.Rules{
		EnemyPoints:         s.gc.Scoring.EnemyPoints,
		AsteroidPoints:      s.factory.Points(),
		FallbackPoints:      s.gc.Scoring.FallbackPoints,
		BounceDamping:       s.gc.Scoring.BounceDamping,
		OneShotEnemies:      s.gc.Enemy.OneShot,
		InvulnerabilityTime: s.gc.Player.Invulnerable,
	}
}

// teardown stops the previous game, if any.
func (s *Session) teardown() {
	if s.mgr == nil {
		return
	}
	s.mgr.Shutdown()
	if err := s.components.StopAll(); err != nil {
		s.logger.Warn("component stop failed", "err", err)
	}
	if err := s.components.DisposeAll(); err != nil {
		s.logger.Warn("component dispose failed", "err", err)
	}
	s.mgr = nil
}

// Step advances the game by one fixed tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.mgr == nil {
		s.Reset(s.cfg)
	}

	if s.gameOver {
		if in.Has(core.ActionRestart) {
			s.Reset(s.cfg)
		}
		return s.result()
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return s.result()
	}

	s.ticks++
	s.factory.SetSpeedScale(s.difficulty.Speed(1, s.board.Score(), s.ticks))
	s.controller.Set(in)

	if err := s.mgr.Update(s.cfg.DT()); err != nil {
		s.logger.Debug("frame completed with errors", "frame", s.mgr.Frame(), "err", err)
	}

	s.applyScorePolicy()
	return s.result()
}

// applyScorePolicy submits increases and detects game over.
func (s *Session) applyScorePolicy() {
	current := s.board.Score()
	if current > s.lastScore && s.opts.Policy.OnIncrease {
		s.reporter.Submit(s.opts.PlayerName, current)
	}
	s.lastScore = current

	if s.Lives() > 0 {
		return
	}
	s.gameOver = true
	s.logger.Info("game over", "score", current, "frames", s.mgr.Frame())

	if s.opts.Policy.OnGameOver && current > 0 && !s.finalSubmitted {
		s.reporter.Submit(s.opts.PlayerName, current)
		s.finalSubmitted = true
	}
}

func (s *Session) result() core.StepResult {
	var frame uint64
	if s.mgr != nil {
		frame = s.mgr.Frame()
	}
	return core.StepResult{State: s.State(), Frame: frame}
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.board.Score(),
		Lives:    s.Lives(),
		Level:    s.difficulty.Stage(s.board.Score(), s.ticks),
		GameOver: s.gameOver,
		Paused:   s.paused,
	}
}

// Lives returns the remaining lives of the ship.
func (s *Session) Lives() int {
	if s.ships == nil {
		return 0
	}
	ship := s.ships.Current()
	if ship == nil || !ship.Active {
		return 0
	}
	if pd, ok := ship.Player(); ok {
		return pd.Lives
	}
	return 0
}

// Scoreboard returns the running statistics of the current game.
func (s *Session) Scoreboard() *collision.Scoreboard {
	return s.board
}

// Counts returns the number of active entities per type.
func (s *Session) Counts() map[entity.Type]int {
	counts := make(map[entity.Type]int)
	if s.mgr == nil {
		return counts
	}
	for _, e := range s.mgr.Entities() {
		if e.Active {
			counts[e.Type]++
		}
	}
	return counts
}

// Modules returns the installed modules in pipeline order.
func (s *Session) Modules() []registry.Info {
	if s.reg == nil {
		return nil
	}
	return s.reg.Infos()
}

// Entities returns the shared entity list for read-only use.
func (s *Session) Entities() []*entity.Entity {
	if s.mgr == nil {
		return nil
	}
	return s.mgr.Entities()
}

// SetLeaderboard sets the scores shown on the game over screen.
func (s *Session) SetLeaderboard(scores []score.ScoreData) {
	s.leaderboard = scores
}

// Close stops the game and flushes pending score submissions.
func (s *Session) Close() {
	s.teardown()
	s.reporter.Close()
}
