package models

import "encoding/json"

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type AnalyzeRequest struct {
	DocumentID string `json:"document_id" validate:"required,uuid"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Result       json.RawMessage `json:"result,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type FeedbackRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Suggestion string `json:"suggestion"`
}

type MetricsResponse struct {
	TotalUploads   int64   `json:"total_uploads"`
	TotalAnalyses  int64   `json:"total_analyses"`
	TotalResumes   int64   `json:"total_resumes"`
	TotalFeedback  int64   `json:"total_feedback"`
	AverageRating  float64 `json:"average_rating"`
	AverageScore   float64 `json:"average_ats_score"`
}

type SaveResumeResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
