package questionbank

import "github.com/triviarena/triviarena/internal/models"

type GetStateInput struct {
}

type SaveStateInput struct {
	State *models.QuestionBankState
}
