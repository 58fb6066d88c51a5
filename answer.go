package nandoku

// CheckAnswer compares a submitted answer against the correct one by
// exact string equality: no trimming, no case folding, no kana-width
// normalization. The correct answer is echoed back only on a mismatch.
func CheckAnswer(sub AnswerSubmission) AnswerResult {
	if sub.Answer == sub.CorrectAnswer {
		return AnswerResult{Result: ResultCorrect}
	}
	correct := sub.CorrectAnswer
	return AnswerResult{Result: ResultIncorrect, CorrectAnswer: &correct}
}
