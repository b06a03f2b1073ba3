package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/raflytch/skillorbit-server/internal/domain"
)

var (
	ErrEmptyMessage = errors.New("message is required")
)

const (
	AIStatusSuccess  = "success"
	AIStatusSkipped  = "skipped_no_ai_client"
	AIStatusFailed   = "failed"
	chatSkillsInHint = 3
)

const mentorSystemPrompt = `You are Sifu, a friendly and concise career mentor for people preparing for future tech roles.

Guidelines:
- Answer in at most 150 words
- Be specific and practical; suggest concrete next steps, courses or projects
- When a skill analysis is provided, ground your advice in the candidate's missing skills and score
- Never invent facts about the candidate beyond the analysis`

type chatService struct {
	model domain.ChatModel
}

// NewChatService builds the mentor chat. A nil model answers every message
// with the rule-based reply.
func NewChatService(model domain.ChatModel) domain.ChatService {
	return &chatService{model: model}
}

func (s *chatService) Reply(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	if s.model == nil {
		return &domain.ChatResponse{Response: fallbackReply(req.Context), AIStatus: AIStatusSkipped}, nil
	}

	reply, err := s.model.GenerateTextWithSystemPrompt(ctx, mentorSystemPrompt, buildChatPrompt(message, req.Context))
	if err != nil {
		log.Printf("chat model failed, answering with fallback: %v", err)
		return &domain.ChatResponse{Response: fallbackReply(req.Context), AIStatus: AIStatusFailed}, nil
	}
	if strings.TrimSpace(reply) == "" {
		log.Printf("chat model returned an empty reply, answering with fallback")
		return &domain.ChatResponse{Response: fallbackReply(req.Context), AIStatus: AIStatusFailed}, nil
	}

	return &domain.ChatResponse{Response: strings.TrimSpace(reply), AIStatus: AIStatusSuccess}, nil
}

func buildChatPrompt(message string, analysis json.RawMessage) string {
	var b strings.Builder
	if len(analysis) > 0 && string(analysis) != "null" {
		b.WriteString("Candidate skill analysis (JSON):\n")
		b.Write(analysis)
		b.WriteString("\n\n")
	}
	b.WriteString("Question: ")
	b.WriteString(message)
	return b.String()
}

// chatContext is the subset of an analysis payload the fallback reply reads.
type chatContext struct {
	TargetRole          string            `json:"target_role"`
	FutureProofingScore *int              `json:"future_proofing_score"`
	SkillGaps           []domain.SkillGap `json:"skill_gaps"`
}

func fallbackReply(raw json.RawMessage) string {
	var ctx chatContext
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &ctx)
	}

	missing := make([]string, 0, chatSkillsInHint)
	for _, gap := range ctx.SkillGaps {
		if gap.Status == domain.SkillMissing && len(missing) < chatSkillsInHint {
			missing = append(missing, gap.Skill)
		}
	}

	if len(missing) == 0 {
		if ctx.FutureProofingScore != nil {
			return fmt.Sprintf("Your future-proofing score is %d/100 and you already cover the required skills. "+
				"Keep it sharp with a portfolio project and a mock interview.", *ctx.FutureProofingScore)
		}
		return "Upload your resume for a skill analysis and I can point you at the skills " +
			"that matter most for your target role."
	}

	role := ctx.TargetRole
	if role == "" {
		role = "your target role"
	}
	reply := fmt.Sprintf("For %s, start with %s. Take one course per skill, then build a small project "+
		"that uses it so you can show it in interviews.", role, strings.Join(missing, ", "))
	if ctx.FutureProofingScore != nil {
		reply = fmt.Sprintf("Your future-proofing score is %d/100. ", *ctx.FutureProofingScore) + reply
	}
	return reply
}
