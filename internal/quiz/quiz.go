package quiz

// OptionCount is the number of options every quiz item carries.
const OptionCount = 4

// Item is a single multiple-choice question.
type Item struct {
	// Question is the prompt shown to the user.
	Question string `json:"question"`

	// Options holds exactly 4 candidate answers, in display order.
	Options []string `json:"options"`

	// Answer is the correct option, verbatim equal to one of Options.
	Answer string `json:"answer"`
}

// Quiz is an ordered set of items, created once per generation and
// replaced wholesale on regeneration.
type Quiz []Item

// Answers maps question index to the user's selected option text.
// Unanswered questions are simply absent.
type Answers map[int]string
