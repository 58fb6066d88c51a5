package nandoku

// PlaceRecord is a place name and its correct reading as returned by the
// place-data API. It is immutable once fetched and lives for one request.
type PlaceRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"` // kanji/display form, also the cache key
	Yomi string `json:"yomi"` // kana reading, the correct answer
}

// QuizPayload is one assembled quiz question. CorrectAnswer is always a
// member of Options; Options order is randomized per request.
type QuizPayload struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// AnswerSubmission is a client-submitted answer. There is no server-side
// session, so the correct answer travels round-trip with the client.
type AnswerSubmission struct {
	QuizID        string `json:"quiz_id"`
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// AnswerResult reports whether a submission matched. CorrectAnswer is only
// set on a mismatch so the client can reveal it.
type AnswerResult struct {
	Result        string  `json:"result"`
	CorrectAnswer *string `json:"correct_answer,omitempty"`
}

const (
	ResultCorrect   = "correct"
	ResultIncorrect = "incorrect"
)
