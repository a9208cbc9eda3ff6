package httpapi

import "github.com/triviarena/triviarena/internal/models"

// Request bodies for the operation endpoints. The caller field stands in for
// an authenticated identity; authn itself is delegated to the deployment's
// edge.

type openRoomRequest struct {
	Caller      string        `json:"caller" binding:"required"`
	RoomName    string        `json:"room_name" binding:"required"`
	MaxPlayers  int           `json:"max_players" binding:"required"`
	Wager       models.Amount `json:"wager"`
	Secret      string        `json:"secret"`
	DisplayName string        `json:"display_name" binding:"required"`
}

type joinRoomRequest struct {
	Caller      string `json:"caller" binding:"required"`
	Secret      string `json:"secret"`
	DisplayName string `json:"display_name" binding:"required"`
}

type startGameRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type submitAnswerRequest struct {
	Caller        string `json:"caller" binding:"required"`
	QuestionIndex int    `json:"question_index"`
	ChoiceIndex   int    `json:"choice_index"`
}

type addQuestionRequest struct {
	Caller       string   `json:"caller" binding:"required"`
	Text         string   `json:"text" binding:"required"`
	Choices      []string `json:"choices" binding:"required"`
	CorrectIndex int      `json:"correct_index"`
	Category     string   `json:"category"`
	Difficulty   int      `json:"difficulty"`
}

type seedQuestion struct {
	Text         string   `json:"text" binding:"required"`
	Choices      []string `json:"choices" binding:"required"`
	CorrectIndex int      `json:"correct_index"`
	Category     string   `json:"category"`
	Difficulty   int      `json:"difficulty"`
}

type bootstrapRequest struct {
	Admin string         `json:"admin" binding:"required"`
	Seed  []seedQuestion `json:"seed"`
}

type withdrawRequest struct {
	Caller string        `json:"caller" binding:"required"`
	Amount models.Amount `json:"amount"`
}

type notifyDebtRequest struct {
	Debtor      string        `json:"debtor" binding:"required"`
	Amount      models.Amount `json:"amount"`
	TargetShard string        `json:"target_shard" binding:"required"`
}

type transferPotRequest struct {
	Amount      models.Amount `json:"amount"`
	TargetShard string        `json:"target_shard" binding:"required"`
}

// battleView is the watcher-facing battle projection. It hides the room
// secret and the correct choice of the open question.
type battleView struct {
	RoomName             string        `json:"room_name"`
	Owner                string        `json:"owner"`
	MaxPlayers           int           `json:"max_players"`
	Wager                models.Amount `json:"wager"`
	HasSecret            bool          `json:"has_secret"`
	Status               string        `json:"status"`
	Pot                  models.Amount `json:"pot"`
	Players              []playerView  `json:"players"`
	CurrentQuestionIndex int           `json:"current_question_index"`
	CurrentQuestion      *questionView `json:"current_question,omitempty"`
	QuestionCount        int           `json:"question_count"`
	StartedAt            *string       `json:"started_at,omitempty"`
	RoundStartedAt       *string       `json:"round_started_at,omitempty"`
}

type playerView struct {
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Score       uint64 `json:"score"`
	HasAnswered bool   `json:"has_answered"`
}

type questionView struct {
	ID         uint64   `json:"id"`
	Text       string   `json:"text"`
	Choices    []string `json:"choices"`
	Category   string   `json:"category,omitempty"`
	Difficulty int      `json:"difficulty,omitempty"`
}

func newBattleView(b *models.Battle) *battleView {
	view := &battleView{
		RoomName:             b.RoomName,
		Owner:                b.Owner,
		MaxPlayers:           b.MaxPlayers,
		Wager:                b.Wager,
		HasSecret:            b.Secret != "",
		Status:               string(b.Status),
		Pot:                  b.Pot,
		CurrentQuestionIndex: b.CurrentQuestionIndex,
		QuestionCount:        len(b.QuestionIDs),
	}

	for _, p := range b.Players {
		view.Players = append(view.Players, playerView{
			Owner:       p.Owner,
			Name:        p.Name,
			Score:       p.Score,
			HasAnswered: p.HasAnsweredCurrent,
		})
	}

	if b.CurrentQuestionIndex < len(b.Questions) {
		q := b.Questions[b.CurrentQuestionIndex]
		view.CurrentQuestion = &questionView{
			ID:         q.ID,
			Text:       q.Text,
			Choices:    q.Choices,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}
	}

	if b.StartedAt != nil {
		ts := b.StartedAt.Format(timeFormat)
		view.StartedAt = &ts
	}

	if b.RoundStartedAt != nil {
		ts := b.RoundStartedAt.Format(timeFormat)
		view.RoundStartedAt = &ts
	}

	return view
}

const timeFormat = "2006-01-02T15:04:05.000Z07:00"
