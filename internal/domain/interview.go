package domain

import (
	"context"
	"time"
)

type StartInterviewRequest struct {
	TargetRole string     `json:"target_role" validate:"required,max=128"`
	Difficulty Difficulty `json:"difficulty" validate:"omitempty,max=16"`
}

type InterviewSession struct {
	InterviewID       string              `json:"interview_id"`
	TargetRole        string              `json:"target_role"`
	Questions         []InterviewQuestion `json:"questions"`
	TotalQuestions    int                 `json:"total_questions"`
	EstimatedDuration string              `json:"estimated_duration"`
}

type EvaluateAnswerRequest struct {
	Question         string   `json:"question"`
	Answer           string   `json:"answer"`
	ExpectedKeywords []string `json:"expected_keywords"`
	TargetRole       string   `json:"target_role"`
}

type ScoreBreakdown struct {
	KeywordCoverage float64 `json:"keyword_coverage"`
	AnswerLength    float64 `json:"answer_length"`
	Confidence      float64 `json:"confidence"`
	Clarity         float64 `json:"clarity"`
}

type AnswerEvaluation struct {
	TotalScore    float64        `json:"total_score"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
	KeywordsFound []string       `json:"keywords_found"`
	WordCount     int            `json:"word_count"`
	Performance   string         `json:"performance"`
	Emoji         string         `json:"emoji"`
	Feedback      string         `json:"feedback"`
}

type AnsweredQuestion struct {
	Question string  `json:"question,omitempty"`
	Answer   string  `json:"answer,omitempty"`
	Score    float64 `json:"score" validate:"gte=0,lte=100"`
	Category string  `json:"category,omitempty"`
	Feedback string  `json:"feedback,omitempty"`
}

type CompleteInterviewRequest struct {
	InterviewID string             `json:"interview_id" validate:"max=64"`
	Answers     []AnsweredQuestion `json:"answers" validate:"dive"`
	UserID      string             `json:"user_id" validate:"omitempty,max=64"`
	TargetRole  string             `json:"target_role" validate:"omitempty,max=128"`
}

type InterviewSummary struct {
	InterviewID    string             `json:"interview_id"`
	TotalQuestions int                `json:"total_questions"`
	AverageScore   float64            `json:"average_score"`
	Grade          string             `json:"grade"`
	Message        string             `json:"message"`
	StrongAreas    []string           `json:"strong_areas"`
	WeakAreas      []string           `json:"weak_areas"`
	DetailedScores []AnsweredQuestion `json:"detailed_scores"`
}

type InterviewRecord struct {
	ID                string    `json:"interview_id"`
	UserID            string    `json:"user_id"`
	Timestamp         time.Time `json:"timestamp"`
	TargetRole        string    `json:"target_role"`
	TotalScore        float64   `json:"total_score"`
	Grade             string    `json:"grade"`
	QuestionsAnswered int       `json:"questions_answered"`
	StrongAreas       []string  `json:"strong_areas"`
	WeakAreas         []string  `json:"weak_areas"`
}

type InterviewRepository interface {
	Create(ctx context.Context, record *InterviewRecord) error
	FindByUserID(ctx context.Context, userID string) ([]InterviewRecord, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
}

type InterviewService interface {
	Start(ctx context.Context, req *StartInterviewRequest) (*InterviewSession, error)
	Evaluate(ctx context.Context, req *EvaluateAnswerRequest) (*AnswerEvaluation, error)
	Complete(ctx context.Context, req *CompleteInterviewRequest) (*InterviewSummary, error)
}
