package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a teacher creating a multiple-choice quiz from a video transcript.

Rules:
- Base every question strictly on the transcript content. Do not invent facts the transcript does not state.
- Respond with a raw JSON list of question objects. No markdown code fences, no prose around the JSON.
- Each object must have:
  - "question": the question string
  - "options": exactly 4 possible answers
  - "answer": the correct answer string, matching one of the options exactly
- Exactly one option is correct. Distractors should be plausible but clearly wrong given the transcript.
- Keep questions self-contained; do not reference "the video" or "the speaker" by timestamps.`

// buildUserMessage constructs the user message embedding the transcript
// and the requested question count.
func buildUserMessage(transcript string, count int) string {
	var b strings.Builder

	b.WriteString("Transcript:\n")
	fmt.Fprintf(&b, "%q\n\n", transcript)
	fmt.Fprintf(&b, "Generate %d questions.\n", count)

	return b.String()
}
