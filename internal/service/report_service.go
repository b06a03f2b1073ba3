package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raflytch/skillorbit-server/internal/domain"

	"github.com/go-pdf/fpdf"
)

var (
	ErrAnalysisNotFound = errors.New("analysis not found")
)

type reportService struct {
	analysisRepo domain.AnalysisRepository
}

func NewReportService(analysisRepo domain.AnalysisRepository) domain.ReportService {
	return &reportService{analysisRepo: analysisRepo}
}

func (s *reportService) AnalysisReport(ctx context.Context, userID, analysisID string) ([]byte, error) {
	record, err := s.analysisRepo.FindByID(ctx, userID, analysisID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}

	return s.generatePDFFromAnalysis(record)
}

func (s *reportService) generatePDFFromAnalysis(record *domain.AnalysisRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("SkillOrbit Analysis Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, "SkillOrbit Analysis Report")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated for %s  |  %s", record.UserID, record.Timestamp.Format("02 Jan 2006 15:04")))
	pdf.Ln(5)
	if record.FileName != "" {
		pdf.Cell(0, 5, "Resume: "+record.FileName)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	s.addSection(pdf, "TARGET")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("%s by %d", record.TargetRole, record.TargetYear))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, fmt.Sprintf("Future-proofing score: %d/100", record.FutureProofingScore))
	pdf.Ln(6)
	s.addScoreBar(pdf, record.FutureProofingScore)
	pdf.Ln(6)

	s.addSkillList(pdf, "EXTRACTED SKILLS", record.ExtractedSkills, "No known skills were found in the resume.")
	s.addSkillList(pdf, "MISSING SKILLS", record.SkillGaps, "None. Every required skill was matched.")
	s.addSkillList(pdf, "RECOMMENDED FOCUS", record.RecommendedSkills, "Keep practicing your strongest skills.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *reportService) addSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, title)
	pdf.Ln(6)
	pdf.SetDrawColor(100, 100, 100)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(3)
}

func (s *reportService) addScoreBar(pdf *fpdf.Fpdf, score int) {
	const width = 180.0
	y := pdf.GetY()
	pdf.SetFillColor(230, 230, 230)
	pdf.Rect(15, y, width, 4, "F")
	pdf.SetFillColor(46, 125, 50)
	pdf.Rect(15, y, width*float64(min(max(score, 0), 100))/100, 4, "F")
	pdf.SetY(y + 4)
}

func (s *reportService) addSkillList(pdf *fpdf.Fpdf, title string, skills []string, empty string) {
	s.addSection(pdf, title)
	pdf.SetFont("Helvetica", "", 9)
	if len(skills) == 0 {
		pdf.MultiCell(0, 4, empty, "", "", false)
	} else {
		pdf.MultiCell(0, 4, strings.Join(skills, "  |  "), "", "", false)
	}
	pdf.Ln(3)
}
