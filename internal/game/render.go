package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Glyphs drawn for each entity kind.
const (
	GlyphShip          = 'A'
	GlyphEnemy         = 'W'
	GlyphAsteroidLarge = 'O'
	GlyphAsteroidMid   = 'o'
	GlyphAsteroidSmall = '.'
	GlyphBullet        = '·'
	GlyphRock          = '#'
	GlyphLife          = '♥'
)

// leaderboardRows is how many scores the game over screen lists.
const leaderboardRows = 5

// Render draws the world and the HUD onto screen. The world's y axis
// points up, so rows are flipped when projecting.
func (s *Session) Render(screen *core.Screen) {
	screen.Clear()
	if s.mgr == nil {
		return
	}

	for _, e := range s.mgr.Entities() {
		if !e.Active {
			continue
		}
		switch e.Type {
		case entity.TypeAsteroid:
			s.drawAsteroid(screen, e)
		case entity.TypeEnemy:
			s.plot(screen, e.X, e.Y, GlyphEnemy, core.ColorEnemy)
		case entity.TypeProjectile:
			s.plot(screen, e.X, e.Y, GlyphBullet, core.ColorProjectile)
		}
	}

	// Ship last so it stays visible on top
	if ship := s.ships.Current(); ship != nil && ship.Active {
		color := core.ColorShip
		if pd, ok := ship.Player(); ok && pd.Invulnerable > 0 && s.ticks/6%2 == 0 {
			color = core.ColorShipHit
		}
		s.plot(screen, ship.X, ship.Y, GlyphShip, color)
		s.drawHeading(screen, ship)
	}

	s.drawHUD(screen)

	switch {
	case s.gameOver:
		s.drawGameOver(screen)
	case s.paused:
		screen.DrawTextCentered(screen.Height()/2, " PAUSED ", core.ColorAlert)
	}
}

func (s *Session) project(screen *core.Screen, x, y float64) (int, int) {
	return core.Project(x, s.worldH-y, s.worldW, s.worldH, screen.Width(), screen.Height())
}

func (s *Session) plot(screen *core.Screen, x, y float64, r rune, c core.Color) {
	sx, sy := s.project(screen, x, y)
	screen.SetColor(sx, sy, r, c)
}

// drawAsteroid outlines asteroids that span several cells and marks the
// small ones with a single glyph.
func (s *Session) drawAsteroid(screen *core.Screen, e *entity.Entity) {
	glyph := GlyphAsteroidLarge
	if ad, ok := e.Asteroid(); ok {
		switch ad.Size {
		case entity.SizeMedium:
			glyph = GlyphAsteroidMid
		case entity.SizeSmall:
			glyph = GlyphAsteroidSmall
		}
	}

	cellW := s.worldW / float64(max(screen.Width(), 1))
	if glyph == GlyphAsteroidLarge && e.Radius >= 2*cellW {
		const points = 16
		for i := 0; i < points; i++ {
			a := e.Radians + float64(i)*2*math.Pi/points
			s.plot(screen, e.X+math.Cos(a)*e.Radius, e.Y+math.Sin(a)*e.Radius, GlyphRock, core.ColorAsteroid)
		}
	}
	s.plot(screen, e.X, e.Y, glyph, core.ColorAsteroid)
}

// drawHeading marks the cell the ship points at.
func (s *Session) drawHeading(screen *core.Screen, ship *entity.Entity) {
	cellW := s.worldW / float64(max(screen.Width(), 1))
	d := math.Max(ship.Radius, cellW) * 1.5
	sx, sy := s.project(screen, ship.X, ship.Y)
	hx, hy := s.project(screen, ship.X+math.Cos(ship.Radians)*d, ship.Y+math.Sin(ship.Radians)*d)
	if hx != sx || hy != sy {
		screen.SetColor(hx, hy, '+', core.ColorShip)
	}
}

func (s *Session) drawHUD(screen *core.Screen) {
	st := s.State()
	left := fmt.Sprintf(" SCORE %06d  LIVES %s", st.Score, strings.Repeat(string(GlyphLife), st.Lives))
	screen.DrawText(0, 0, left, core.ColorHUD)

	right := fmt.Sprintf("LEVEL %d ", st.Level)
	screen.DrawText(screen.Width()-len(right), 0, right, core.ColorHUD)
}

func (s *Session) drawGameOver(screen *core.Screen) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final score: %d", s.board.Score()),
	}
	if len(s.leaderboard) > 0 {
		lines = append(lines, "", "HIGH SCORES")
		for i, sd := range s.leaderboard {
			if i == leaderboardRows {
				break
			}
			lines = append(lines, fmt.Sprintf("%d. %-12s %6d", i+1, truncate(sd.PlayerName, 12), sd.ScoreValue))
		}
	}
	lines = append(lines, "", "R restart  Q quit")

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(
		(screen.Width()-width-4)/2,
		(screen.Height()-len(lines)-2)/2,
		width+4,
		len(lines)+2,
	)
	screen.FillRect(box, ' ')
	screen.DrawBox(box, core.ColorAlert)
	for i, l := range lines {
		screen.DrawTextCentered(box.Y+1+i, l, core.ColorHUD)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
