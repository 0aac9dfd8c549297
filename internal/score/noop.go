package score

import "context"

// Noop is a service that is never available. Used for headless runs.
type Noop struct{}

func (Noop) Initialize(context.Context) error                          { return nil }
func (Noop) Available() bool                                           { return false }
func (Noop) SubmitScore(context.Context, string, int) bool             { return false }
func (Noop) TopScores(context.Context, int) []ScoreData                { return nil }
func (Noop) PlayerHighScore(context.Context, string) (ScoreData, bool) { return ScoreData{}, false }
func (Noop) PlayerScores(context.Context, string) []ScoreData          { return nil }

var _ Service = Noop{}
