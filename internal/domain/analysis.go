package domain

import (
	"context"
	"errors"
	"time"
)

const DefaultTargetYear = 2028

var ErrRecordNotFound = errors.New("record not found")

type SkillStatus string

const (
	SkillMatched SkillStatus = "matched"
	SkillMissing SkillStatus = "missing"
)

type SkillGap struct {
	Skill         string      `json:"skill"`
	Status        SkillStatus `json:"status"`
	Importance    string      `json:"importance"`
	Current       int         `json:"current"`
	RequiredLevel int         `json:"required_level"`
}

type RadarData struct {
	Labels []string `json:"labels"`
	Scores []int    `json:"scores"`
}

// GapAnalysis is the comparison of extracted skills against a role profile.
type GapAnalysis struct {
	Role          string     `json:"role"`
	TotalRequired int        `json:"total_required"`
	MatchedCount  int        `json:"matched_count"`
	Score         int        `json:"score"`
	MissingSkills []string   `json:"missing_skills"`
	SkillGaps     []SkillGap `json:"skill_gaps"`
	Radar         RadarData  `json:"radar_data"`
	Insights      []string   `json:"insights"`
}

type CourseRecommendation struct {
	CourseID       string   `json:"course_id,omitempty"`
	Title          string   `json:"title"`
	Provider       string   `json:"provider"`
	Duration       string   `json:"duration"`
	Rating         float64  `json:"rating"`
	MatchingSkills []string `json:"matching_skills"`
	URL            string   `json:"url"`
}

type ProjectRecommendation struct {
	Title         string   `json:"title"`
	Difficulty    string   `json:"difficulty"`
	Duration      string   `json:"duration"`
	Description   string   `json:"description"`
	SkillsLearned []string `json:"skills_learned"`
	TargetSkill   string   `json:"target_skill"`
	GithubExample string   `json:"github_example"`
	URL           string   `json:"url,omitempty"`
}

type AnalyzeRequest struct {
	TargetRole string `form:"target_role" validate:"required,max=128"`
	TargetYear int    `form:"target_year" validate:"omitempty,min=2000,max=2100"`
	UserID     string `form:"user_id" validate:"omitempty,max=64"`
}

// Document is an uploaded resume file.
type Document struct {
	FileName string
	Data     []byte
}

type AnalysisResult struct {
	AnalysisID          string                  `json:"analysis_id,omitempty"`
	ExtractedSkills     []string                `json:"extracted_skills"`
	FutureProofingScore int                     `json:"future_proofing_score"`
	SkillGaps           []SkillGap              `json:"skill_gaps"`
	RadarData           RadarData               `json:"radar_data"`
	Insights            []string                `json:"insights"`
	TargetRole          string                  `json:"target_role"`
	TargetYear          int                     `json:"target_year"`
	RecommendedCourses  []CourseRecommendation  `json:"recommended_courses"`
	RecommendedProjects []ProjectRecommendation `json:"recommended_projects"`
}

// MissingSkills returns the names of skills whose gap status is missing, in gap order.
func (r *AnalysisResult) MissingSkills() []string {
	missing := make([]string, 0)
	for _, gap := range r.SkillGaps {
		if gap.Status == SkillMissing {
			missing = append(missing, gap.Skill)
		}
	}
	return missing
}

type AnalysisRecord struct {
	ID                  string    `json:"analysis_id"`
	UserID              string    `json:"user_id"`
	Timestamp           time.Time `json:"timestamp"`
	TargetRole          string    `json:"target_role"`
	TargetYear          int       `json:"target_year"`
	FutureProofingScore int       `json:"future_proofing_score"`
	ExtractedSkills     []string  `json:"extracted_skills"`
	SkillGaps           []string  `json:"skill_gaps"`
	RecommendedSkills   []string  `json:"recommended_skills"`
	FileName            string    `json:"file_name"`
	ObjectKey           string    `json:"object_key,omitempty"`
}

type AnalysisRepository interface {
	Create(ctx context.Context, record *AnalysisRecord) error
	FindByID(ctx context.Context, userID, id string) (*AnalysisRecord, error)
	FindByUserID(ctx context.Context, userID string) ([]AnalysisRecord, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
}

type AnalysisService interface {
	AnalyzeDocument(ctx context.Context, req *AnalyzeRequest, doc *Document) (*AnalysisResult, error)
	AnalyzeText(ctx context.Context, text, targetRole string, targetYear int) (*AnalysisResult, error)
}

type ReportService interface {
	AnalysisReport(ctx context.Context, userID, analysisID string) ([]byte, error)
}
