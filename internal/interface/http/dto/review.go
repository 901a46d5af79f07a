package dto

import (
	appreview "github.com/xiebiao/marketplace/internal/application/review"
)

// ReviewRequest 评价表单
type ReviewRequest struct {
	Rating   *int   `json:"rating" swaggertype:"integer" minimum:"1" maximum:"5"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

// ToForm HTTP DTO → 应用层表单
func (r ReviewRequest) ToForm() appreview.Form {
	return appreview.Form{Rating: r.Rating, Text: r.Text, ImageURL: r.ImageURL}
}
