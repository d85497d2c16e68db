package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/team-dbase/dbase-ai/internal/extract"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// AnalysisSkipped is stored when no generation backend is configured,
// the company name is missing, or generation failed.
const AnalysisSkipped = "LLM 미설정 또는 회사명 누락으로 AI 분석을 건너뜁니다."

// Generator is the one capability the analysis step needs from a text
// generation backend.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ollamaGenerator struct {
	llm *ollama.LLM
}

// NewOllamaGenerator connects to the locally served model addressed by
// modelID. The server address comes from OLLAMA_HOST when set.
func NewOllamaGenerator(modelID string) (Generator, error) {
	llm, err := ollama.New(ollama.WithModel(modelID))
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return &ollamaGenerator{llm: llm}, nil
}

func (g *ollamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(0.6),
		llms.WithMaxTokens(400),
	)
}

// LLMService produces the company analysis text that gets stored next
// to the search summary. A nil Generator is the explicit "no backend"
// state.
type LLMService struct {
	Generator Generator
}

func NewLLMService(gen Generator) *LLMService {
	return &LLMService{Generator: gen}
}

// AnalyzeCompany builds the analysis prompt from the extracted record
// and the search summary and runs it through the backend. Whenever the
// backend is absent or errors, the fixed placeholder is returned; the
// caller never sees a failure.
func (s *LLMService) AnalyzeCompany(ctx context.Context, rec *extract.Record, searchSummary string) string {
	if s.Generator == nil || !rec.Usable() {
		return AnalysisSkipped
	}

	result, err := s.Generator.Generate(ctx, buildAnalysisPrompt(rec, searchSummary))
	if err != nil {
		log.Printf("AI analysis failed, storing placeholder: %v", err)
		return AnalysisSkipped
	}
	return strings.TrimSpace(result)
}

func buildAnalysisPrompt(rec *extract.Record, searchSummary string) string {
	return fmt.Sprintf(
		"다음 정보를 바탕으로 '%s'의 기업 분석 보고서를 작성해줘. "+
			"회사의 주력 사업, 사용하는 기술, 성장 가능성에 초점을 맞춰 전문가 관점에서 간결하게 400자 내외로 요약해줘. "+
			"불필요한 인사말이나 서론은 제외하고 핵심 내용만 포함해줘.\n\n"+
			"## 추출 정보:\n- 주요 사업: %s\n- 모집 직종: %s\n- 필요 기술/자격: %s\n\n"+
			"## 웹 검색 결과 요약:\n%s\n\n"+
			"## 기업 분석 보고서:",
		derefOr(rec.CompanyName, "N/A"),
		derefOr(rec.MainBusiness, "N/A"),
		derefOr(rec.JobCategory, "N/A"),
		derefOr(rec.Qualifications, "N/A"),
		searchSummary,
	)
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
