package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/team-dbase/dbase-ai/internal/dtos"
	"github.com/team-dbase/dbase-ai/internal/extract"
	"github.com/team-dbase/dbase-ai/internal/services"
)

// PDFHandler runs the whole pipeline for one uploaded document:
// text extraction, field extraction, enrichment, persistence.
type PDFHandler struct {
	Extractor      extract.TextExtractor
	SearchService  *services.SearchService
	LLMService     *services.LLMService
	CompanyService *services.CompanyService
	UploadDir      string
}

func NewPDFHandler(extractor extract.TextExtractor, search *services.SearchService, llm *services.LLMService, companies *services.CompanyService, uploadDir string) *PDFHandler {
	return &PDFHandler{
		Extractor:      extractor,
		SearchService:  search,
		LLMService:     llm,
		CompanyService: companies,
		UploadDir:      uploadDir,
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ProcessPDF is the POST /api/process-pdf endpoint
func (h *PDFHandler) ProcessPDF(c *gin.Context) {
	var req dtos.ProcessPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.NewAPIError("request body must be valid JSON: "+err.Error()))
		return
	}
	filename := req.Name()
	if filename == "" {
		c.JSON(http.StatusBadRequest, dtos.NewAPIError("JSON body is missing the 'filename' key"))
		return
	}

	path := filepath.Join(h.UploadDir, req.FolderID, filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, dtos.NewAPIError("no file found at "+path))
		return
	}

	text, err := h.Extractor.ExtractText(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dtos.NewAPIError(fmt.Sprintf("failed to read %s: %v", filename, err)))
		return
	}
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusInternalServerError, dtos.NewAPIError("no text could be extracted from "+filename))
		return
	}

	rec := extract.Parse(text)
	if !rec.Usable() {
		c.JSON(http.StatusUnprocessableEntity, dtos.NewAPIError("could not extract a company name from the document"))
		return
	}

	ctx := c.Request.Context()
	searchSummary := h.SearchService.Summary(ctx, *rec.CompanyName)
	aiAnalysis := h.LLMService.AnalyzeCompany(ctx, rec, searchSummary)

	companyID, jobPostingID, err := h.CompanyService.SaveExtraction(rec, searchSummary, aiAnalysis)
	if err != nil {
		log.Printf("Processing %s failed: %v", filename, err)
		c.JSON(http.StatusInternalServerError, dtos.NewAPIError("unexpected error: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dtos.ProcessPDFResponse{
		Status:  "success",
		Message: fmt.Sprintf("'%s' was processed and saved", filename),
		Data: dtos.ProcessPDFResult{
			CompanyID:    companyID,
			JobPostingID: jobPostingID,
		},
	})
}
