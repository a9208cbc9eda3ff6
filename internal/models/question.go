package models

// Question represents one catalog entry in the question bank
type Question struct {
	// ID is the bank-assigned identifier
	ID uint64

	// Text is the question text
	Text string

	// Choices is the ordered list of answer choices
	Choices []string

	// CorrectIndex is the index into Choices of the correct answer
	CorrectIndex int

	// Category is a free-form grouping label
	Category string

	// Difficulty is a 1-5 rating
	Difficulty int
}

// QuestionBankState is the root state of the question-bank shard
type QuestionBankState struct {
	// Catalog is the ordered question list
	Catalog []*Question

	// NextQuestionID is the id assigned to the next added question
	NextQuestionID uint64

	// RequestSeq counts handled supply requests; it seeds deterministic
	// question selection
	RequestSeq uint64

	// Treasury accumulates protocol fees
	Treasury Amount

	// Admin is the identity allowed to add questions and withdraw fees
	Admin string
}
