package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// NoSearchResults is stored when the web search produced nothing.
const NoSearchResults = "검색 결과 없음"

// maxSummaryResults caps how many search hits make it into the stored
// summary.
const maxSummaryResults = 5

// SearchService wraps the Serper search API. Every failure mode —
// missing key, transport error, bad status, bad body — degrades to an
// empty result instead of an error; enrichment never fails a request.
type SearchService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewSearchService(apiKey, endpoint string) *SearchService {
	return &SearchService{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type serperResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type serperResponse struct {
	Organic []serperResult `json:"organic"`
}

// Search queries Serper for the company name and formats each organic
// result as a three-line title/link/snippet block.
func (s *SearchService) Search(ctx context.Context, query string) []string {
	if query == "" || s.apiKey == "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("Web search failed: %v", err)
		return nil
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Web search failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Web search failed: status %d", resp.StatusCode)
		return nil
	}

	var parsed serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("Web search failed: %v", err)
		return nil
	}

	blocks := make([]string, 0, len(parsed.Organic))
	for _, r := range parsed.Organic {
		title, link, snippet := r.Title, r.Link, r.Snippet
		if title == "" {
			title = "N/A"
		}
		if link == "" {
			link = "N/A"
		}
		if snippet == "" {
			snippet = "내용 없음"
		}
		blocks = append(blocks, fmt.Sprintf("제목: %s\n링크: %s\n내용: %s", title, link, snippet))
	}
	return blocks
}

// Summary joins the top results into the single string stored on the
// company, or the fixed placeholder when there are none.
func (s *SearchService) Summary(ctx context.Context, query string) string {
	results := s.Search(ctx, query)
	if len(results) == 0 {
		return NoSearchResults
	}
	if len(results) > maxSummaryResults {
		results = results[:maxSummaryResults]
	}
	return strings.Join(results, "\n\n")
}
