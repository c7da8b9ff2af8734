package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jjenkins/volume/internal/model"
)

const scholarInstruction = " You are a wise and patient Bible scholar. Help the user understand the 'Volume of the Book'. Answer theological questions with scriptural references."

// Replies used when the model gives nothing usable
const (
	StudyEmptyReply = "Forgive me, I could not find an answer."
	StudyErrorReply = "An error occurred while seeking guidance. Please check your connection."
)

// StudyAssistant answers questions over an explicit conversation transcript.
// It keeps no session state of its own.
type StudyAssistant struct {
	ai          AIGateway
	instruction string
	logger      *zap.Logger
}

// NewStudyAssistant creates a new StudyAssistant. instruction is prepended
// to the scholar persona.
func NewStudyAssistant(ai AIGateway, instruction string, logger *zap.Logger) *StudyAssistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudyAssistant{
		ai:          ai,
		instruction: instruction + scholarInstruction,
		logger:      logger,
	}
}

// Instruction returns the system instruction sent with every turn
func (a *StudyAssistant) Instruction() string {
	return a.instruction
}

// Reply appends the user's message and the model's answer to transcript
// and returns the result. transcript itself is not modified.
func (a *StudyAssistant) Reply(ctx context.Context, transcript model.Transcript, userText string) model.Transcript {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return transcript
	}

	next := transcript.With(model.ChatMessage{Role: model.RoleUser, Text: userText})

	reply, err := a.ai.Converse(ctx, a.instruction, next)
	switch {
	case err != nil:
		a.logger.Warn("Study assistant failed", zap.Int("turns", len(next)), zap.Error(err))
		reply = StudyErrorReply
	case strings.TrimSpace(reply) == "":
		reply = StudyEmptyReply
	}

	return next.With(model.ChatMessage{Role: model.RoleModel, Text: reply})
}
