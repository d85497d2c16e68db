package dtos

// ProcessPDFRequest identifies a previously uploaded file, either by a
// flat filename or by a folder id + filename pair under the upload root.
type ProcessPDFRequest struct {
	Filename string `json:"filename"`
	FileName string `json:"fileName"`
	FolderID string `json:"folderId"`
}

// Name returns the filename under whichever key the uploader used.
func (r *ProcessPDFRequest) Name() string {
	if r.Filename != "" {
		return r.Filename
	}
	return r.FileName
}

type ProcessPDFResult struct {
	CompanyID    uint `json:"company_id"`
	JobPostingID uint `json:"job_posting_id"`
}

type ProcessPDFResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    ProcessPDFResult `json:"data"`
}

type APIError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewAPIError(message string) APIError {
	return APIError{Status: "error", Message: message}
}
