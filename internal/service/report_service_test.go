package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/raflytch/skillorbit-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisReport(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	saved, err := fx.service.SaveAnalysis(ctx, &domain.AnalysisRecord{
		UserID:              "u1",
		TargetRole:          "Data Scientist",
		TargetYear:          2028,
		FutureProofingScore: 35,
		ExtractedSkills:     []string{"Python", "SQL"},
		SkillGaps:           []string{"Statistics", "Machine Learning"},
		RecommendedSkills:   []string{"Statistics"},
		FileName:            "cv.pdf",
	})
	require.NoError(t, err)

	svc := NewReportService(fx.store.Analyses)
	data, err := svc.AnalysisReport(ctx, "u1", saved.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, err = svc.AnalysisReport(ctx, "u2", saved.ID)
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}

func TestAnalysisReportWithEmptyLists(t *testing.T) {
	fx := newProgressFixture(t)
	ctx := context.Background()

	saved, err := fx.service.SaveAnalysis(ctx, &domain.AnalysisRecord{UserID: "u1", TargetRole: "AI Engineer", FutureProofingScore: 100})
	require.NoError(t, err)

	data, err := NewReportService(fx.store.Analyses).AnalysisReport(ctx, "u1", saved.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
