package collision

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Splitter breaks an asteroid into fragments. Implementations deactivate
// the parent and return the fragments, or nil when it cannot split.
type Splitter interface {
	Split(e *entity.Entity) []*entity.Entity
}

// Scoreboard accumulates the score deltas produced by handlers.
// One scoreboard belongs to one session.
type Scoreboard struct {
	score         int
	asteroidsShot int
	enemiesKilled int
	livesLost     int
}

// Score returns the current score.
func (s *Scoreboard) Score() int { return s.score }

// AddScore adds points to the score.
func (s *Scoreboard) AddScore(points int) { s.score += points }

// AsteroidsShot returns how many asteroids were hit by projectiles.
func (s *Scoreboard) AsteroidsShot() int { return s.asteroidsShot }

// EnemiesKilled returns how many enemies were destroyed.
func (s *Scoreboard) EnemiesKilled() int { return s.enemiesKilled }

// LivesLost returns how many lives the player lost.
func (s *Scoreboard) LivesLost() int { return s.livesLost }

// Reset clears the scoreboard for a new game.
func (s *Scoreboard) Reset() { *s = Scoreboard{} }

// Rules tunes the built-in handlers.
type Rules struct {
	EnemyPoints         int                         // Awarded when an enemy is destroyed
	AsteroidPoints      map[entity.AsteroidSize]int // Awarded per asteroid size hit
	FallbackPoints      int                         // Awarded for an asteroid without size data
	BounceDamping       float64                     // Velocity factor for enemy/asteroid bounces
	OneShotEnemies      bool                        // Projectiles destroy enemies outright
	InvulnerabilityTime float64                     // Seconds of grace after the player loses a life
}

// DefaultRules returns the reference scoring and damage policy.
func DefaultRules() Rules {
	return Rules{
		EnemyPoints: 150,
		AsteroidPoints: map[entity.AsteroidSize]int{
			entity.SizeLarge:  20,
			entity.SizeMedium: 50,
			entity.SizeSmall:  100,
		},
		FallbackPoints:      50,
		BounceDamping:       0.8,
		OneShotEnemies:      true,
		InvulnerabilityTime: 2.0,
	}
}

// Defaults registers the built-in handlers on e.
// The splitter may be nil, in which case asteroids are simply destroyed.
func Defaults(e *Engine, sb *Scoreboard, splitter Splitter, rules Rules) {
	d := &defaults{engine: e, sb: sb, splitter: splitter, rules: rules}

	e.AddHandler(entity.TypePlayer, entity.TypeAsteroid, d.playerAsteroid)
	e.AddHandler(entity.TypePlayer, entity.TypeEnemy, d.playerEnemy)
	e.AddHandler(entity.TypeProjectile, entity.TypeAsteroid, d.projectileAsteroid)
	e.AddHandler(entity.TypeProjectile, entity.TypeEnemy, d.projectileEnemy)
	e.AddHandler(entity.TypeEnemy, entity.TypeAsteroid, d.enemyAsteroid)
}

type defaults struct {
	engine   *Engine
	sb       *Scoreboard
	splitter Splitter
	rules    Rules
}

// hitPlayer takes one life. Returns false while the player is in its
// post-hit grace period.
func (d *defaults) hitPlayer(p *entity.Entity) bool {
	pd, ok := p.Player()
	if !ok {
		p.Destroy()
		return true
	}
	if pd.Invulnerable > 0 {
		return false
	}

	pd.Lives--
	d.sb.livesLost++
	if pd.Lives <= 0 {
		pd.Lives = 0
		p.Destroy()
		return true
	}
	pd.Invulnerable = d.rules.InvulnerabilityTime
	return true
}

// split breaks an asteroid and queues its fragments.
func (d *defaults) split(a *entity.Entity) {
	if d.splitter == nil {
		a.Destroy()
		return
	}
	d.engine.Spawn(d.splitter.Split(a)...)
	a.Destroy()
}

func (d *defaults) asteroidPoints(a *entity.Entity) int {
	if ad, ok := a.Asteroid(); ok {
		if pts, ok := d.rules.AsteroidPoints[ad.Size]; ok {
			return pts
		}
	}
	return d.rules.FallbackPoints
}

func (d *defaults) playerAsteroid(p, a *entity.Entity) Result {
	if !d.hitPlayer(p) {
		return Result{A: p, B: a}
	}
	d.split(a)
	return Result{A: p, B: a, Resolved: true}
}

func (d *defaults) playerEnemy(p, en *entity.Entity) Result {
	if !d.hitPlayer(p) {
		return Result{A: p, B: en}
	}
	en.Destroy()
	d.sb.enemiesKilled++
	d.sb.AddScore(d.rules.EnemyPoints)
	return Result{A: p, B: en, Resolved: true}
}

func (d *defaults) projectileAsteroid(pr, a *entity.Entity) Result {
	pr.Destroy()
	d.sb.asteroidsShot++
	d.sb.AddScore(d.asteroidPoints(a))
	d.split(a)
	return Result{A: pr, B: a, Resolved: true}
}

func (d *defaults) projectileEnemy(pr, en *entity.Entity) Result {
	bd, hasBullet := pr.Bullet()
	if hasBullet && bd.ShooterID == en.ID {
		return Result{A: pr, B: en}
	}
	pr.Destroy()

	ed, hasEnemy := en.Enemy()
	if d.rules.OneShotEnemies || !hasEnemy {
		en.Destroy()
	} else {
		dmg := 1
		if hasBullet && bd.Damage > 0 {
			dmg = bd.Damage
		}
		ed.Health -= dmg
		if ed.Health > 0 {
			return Result{A: pr, B: en, Resolved: true}
		}
		en.Destroy()
	}

	d.sb.enemiesKilled++
	d.sb.AddScore(d.rules.EnemyPoints)
	return Result{A: pr, B: en, Resolved: true}
}

// enemyAsteroid bounces the enemy off the asteroid with damped, inverted
// velocity and pushes it out of overlap along the line between centers.
func (d *defaults) enemyAsteroid(en, a *entity.Entity) Result {
	en.DX = -en.DX * d.rules.BounceDamping
	en.DY = -en.DY * d.rules.BounceDamping

	dx, dy := en.X-a.X, en.Y-a.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		// Coincident centers: separate along the enemy's heading
		dx, dy = math.Cos(en.Radians), math.Sin(en.Radians)
	}
	if overlap := en.Radius + a.Radius - dist; overlap > 0 {
		n := math.Hypot(dx, dy)
		en.X += dx / n * overlap
		en.Y += dy / n * overlap
	}
	return Result{A: en, B: a, Resolved: true}
}
