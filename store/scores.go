package store

const scoresFile = "scores.json"

// ScoreBook keeps the best score per game, persisted through the store.
type ScoreBook struct {
	store  *Store
	scores map[string]int
}

func NewScoreBook(s *Store) (*ScoreBook, error) {
	b := &ScoreBook{store: s, scores: map[string]int{}}
	if err := s.Load(scoresFile, &b.scores); err != nil {
		return nil, err
	}
	return b, nil
}

// Best returns the recorded high score for game, zero when none.
func (b *ScoreBook) Best(game string) int {
	return b.scores[game]
}

// Record stores score if it beats the current best and reports whether it
// did. The book is saved on every new record.
func (b *ScoreBook) Record(game string, score int) (bool, error) {
	if score <= b.scores[game] {
		return false, nil
	}
	b.scores[game] = score
	if err := b.store.Save(scoresFile, b.scores); err != nil {
		return true, err
	}
	return true, nil
}
