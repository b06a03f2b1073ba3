package service

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrNoExtractableText = errors.New("could not extract text from document")
)

const resumeObjectPrefix = "resumes/"

type analysisService struct {
	reader      domain.TextExtractor
	extractor   *SkillExtractor
	gaps        *GapAnalyzer
	recommender *RecommendationEngine
	progress    domain.ProgressService
	storage     domain.ObjectStorage
}

// NewAnalysisService wires the resume analysis pipeline. progress and storage
// are optional; without progress nothing is recorded and without storage the
// uploaded file is not archived.
func NewAnalysisService(
	c *catalog.Catalog,
	reader domain.TextExtractor,
	rnd Random,
	progress domain.ProgressService,
	storage domain.ObjectStorage,
) domain.AnalysisService {
	return &analysisService{
		reader:      reader,
		extractor:   NewSkillExtractor(c.Skills),
		gaps:        NewGapAnalyzer(c, rnd),
		recommender: NewRecommendationEngine(c),
		progress:    progress,
		storage:     storage,
	}
}

func (s *analysisService) AnalyzeDocument(ctx context.Context, req *domain.AnalyzeRequest, doc *domain.Document) (*domain.AnalysisResult, error) {
	text, err := s.reader.ExtractText(doc.FileName, doc.Data)
	if err != nil {
		log.Printf("text extraction failed for %s: %v", doc.FileName, err)
		return nil, ErrNoExtractableText
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoExtractableText
	}

	result, err := s.AnalyzeText(ctx, text, req.TargetRole, req.TargetYear)
	if err != nil {
		return nil, err
	}

	if req.UserID != "" && s.progress != nil {
		s.record(ctx, req.UserID, doc, result)
	}

	return result, nil
}

func (s *analysisService) AnalyzeText(ctx context.Context, text, targetRole string, targetYear int) (*domain.AnalysisResult, error) {
	if targetYear == 0 {
		targetYear = domain.DefaultTargetYear
	}

	extracted := s.extractor.Extract(text)
	gap := s.gaps.Analyze(extracted, targetRole)

	return &domain.AnalysisResult{
		ExtractedSkills:     extracted,
		FutureProofingScore: gap.Score,
		SkillGaps:           gap.SkillGaps,
		RadarData:           gap.Radar,
		Insights:            gap.Insights,
		TargetRole:          targetRole,
		TargetYear:          targetYear,
		RecommendedCourses:  s.recommender.Courses(gap.MissingSkills),
		RecommendedProjects: s.recommender.Projects(gap.MissingSkills),
	}, nil
}

// record archives the upload and saves the analysis. Failures are logged and
// leave AnalysisID empty.
func (s *analysisService) record(ctx context.Context, userID string, doc *domain.Document, result *domain.AnalysisResult) {
	missing := result.MissingSkills()

	rec := &domain.AnalysisRecord{
		ID:                  uuid.New().String(),
		UserID:              userID,
		TargetRole:          result.TargetRole,
		TargetYear:          result.TargetYear,
		FutureProofingScore: result.FutureProofingScore,
		ExtractedSkills:     result.ExtractedSkills,
		SkillGaps:           missing,
		RecommendedSkills:   missing[:min(courseSkillLimit, len(missing))],
		FileName:            doc.FileName,
	}

	if s.storage != nil {
		key, contentType := resumeObjectKey(userID, rec.ID, doc)
		if err := s.storage.Upload(ctx, key, contentType, doc.Data); err != nil {
			log.Printf("failed to archive resume for user %s: %v", userID, err)
		} else {
			rec.ObjectKey = key
		}
	}

	saved, err := s.progress.SaveAnalysis(ctx, rec)
	if err != nil {
		log.Printf("failed to record analysis for user %s: %v", userID, err)
		return
	}
	result.AnalysisID = saved.ID
}

func resumeObjectKey(userID, analysisID string, doc *domain.Document) (string, string) {
	mtype := mimetype.Detect(doc.Data)
	ext := strings.ToLower(filepath.Ext(doc.FileName))
	if ext == "" {
		ext = mtype.Extension()
	}
	return resumeObjectPrefix + userID + "/" + analysisID + ext, mtype.String()
}
