package domain

import "time"

// Project is a single record on the dashboard.
// Image and Description are nullable server-side, so they stay pointers here.
type Project struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	ProjectName string    `json:"projectName"`
	Image       *string   `json:"image"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ImageURL returns the hosted image URL or "" when the project has none.
func (p Project) ImageURL() string {
	if p.Image == nil {
		return ""
	}
	return *p.Image
}

// DescriptionText returns the description or "" when the project has none.
func (p Project) DescriptionText() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}
