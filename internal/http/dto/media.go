package dto

import (
	"time"

	"masteria.app/panel/internal/service"
)

type UploadURLRequest struct {
	Filename    string `json:"filename" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required"`
}

type UploadURLResponse struct {
	Key       string            `json:"key"`
	UploadURL string            `json:"upload_url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
	PublicURL string            `json:"public_url,omitempty"`
}

func ToUploadURLResponse(u *service.UploadURL) *UploadURLResponse {
	return &UploadURLResponse{
		Key:       u.Key,
		UploadURL: u.Upload.URL,
		Method:    u.Upload.Method,
		Headers:   u.Upload.Headers,
		ExpiresAt: u.Upload.ExpiresAt,
		PublicURL: u.PublicURL,
	}
}
