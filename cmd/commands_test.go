package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/config"
	"github.com/raflytch/skillorbit-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolesCommand(t *testing.T) {
	var out bytes.Buffer
	rolesCmd.SetOut(&out)
	rolesCmd.Run(rolesCmd, nil)

	text := out.String()
	assert.Contains(t, text, "Data Scientist (default)")
	assert.Contains(t, text, "  core:     AWS, Azure")
	assert.Contains(t, text, "  emerging: ")
	assert.Less(t, strings.Index(text, "AI Engineer"), strings.Index(text, "Cloud Architect"))
}

func TestAnalyzeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python, Docker and Kubernetes"), 0o644))

	var out bytes.Buffer
	analyzeCmd.SetOut(&out)
	analyzeCmd.SetContext(context.Background())
	require.NoError(t, analyzeCmd.Flags().Set("role", "Cloud Architect"))
	require.NoError(t, analyzeCmd.Flags().Set("seed", "9"))

	require.NoError(t, analyzeCmd.RunE(analyzeCmd, []string{path}))

	var result domain.AnalysisResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "Cloud Architect", result.TargetRole)
	assert.Equal(t, domain.DefaultTargetYear, result.TargetYear)
	assert.Equal(t, []string{"Python", "Docker", "Kubernetes"}, result.ExtractedSkills)
	assert.Equal(t, 14, result.FutureProofingScore)
}

func TestNewChatModelWithoutKeys(t *testing.T) {
	for _, provider := range []string{"", "gemini", "groq", "openai"} {
		model, err := newChatModel(config.LLMConfig{Provider: provider})
		assert.Nil(t, model)
		assert.ErrorIs(t, err, errNoLLMKey, provider)
	}

	_, err := newChatModel(config.LLMConfig{Provider: "claude"})
	assert.Error(t, err)
}

func TestNewChatModelGroq(t *testing.T) {
	model, err := newChatModel(config.LLMConfig{Provider: "groq", GroqAPIKey: "gsk_test"})
	require.NoError(t, err)
	assert.NotNil(t, model)
}

func TestBuildDependenciesWithFileStore(t *testing.T) {
	cfg := config.Load()
	cfg.Store = config.StoreConfig{Driver: config.StoreFile, DataDir: t.TempDir()}
	cfg.Redis.Host = ""
	cfg.Broker.URL = ""
	cfg.Storage = config.StorageConfig{}
	cfg.LLM = config.LLMConfig{}

	deps, err := buildDependencies(context.Background(), cfg, catalog.Default())
	require.NoError(t, err)
	defer deps.Close()

	reply, err := deps.Chat.Reply(context.Background(), &domain.ChatRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "skipped_no_ai_client", reply.AIStatus)
}
