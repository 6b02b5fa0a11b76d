package quiz

// Verdict is the scoring outcome for one quiz item.
type Verdict struct {
	Question string
	Chosen   string // the user's selection, "" when unanswered
	Answer   string
	Correct  bool
}

// Result aggregates per-item verdicts and the final score.
type Result struct {
	Verdicts []Verdict
	Correct  int
	Total    int
}

// Score compares the user's answers against the quiz by exact string
// equality. Case and whitespace matter. Score is pure: neither the
// quiz nor the answers are mutated, so repeated calls with the same
// inputs always produce the same result.
func Score(q Quiz, a Answers) Result {
	r := Result{
		Verdicts: make([]Verdict, len(q)),
		Total:    len(q),
	}

	for i, item := range q {
		chosen := a[i]
		correct := chosen == item.Answer
		if correct {
			r.Correct++
		}
		r.Verdicts[i] = Verdict{
			Question: item.Question,
			Chosen:   chosen,
			Answer:   item.Answer,
			Correct:  correct,
		}
	}

	return r
}
