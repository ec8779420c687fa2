// Package dto contains Data Transfer Objects for API request and response structures
package dto

// PhotoUploadResponse represents the response after a profile photo upload
type PhotoUploadResponse struct {
	Message      string `json:"message"`
	PhotoURL     string `json:"photo_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	SizeBytes    int64  `json:"size_bytes"`
}
