package models

import (
	"fmt"
	"time"
)

type ProfileStatus string

const (
	ProfilePendingBio ProfileStatus = "Pending Bio"
	ProfileReady      ProfileStatus = "Ready"
	ProfilePublished  ProfileStatus = "Published"
)

// LocalProfile is the lighter-weight analog of ServiceProvider for
// individuals offering informal skills rather than a registered service.
type LocalProfile struct {
	ID                string           `json:"id"`
	FullName          string           `json:"fullName"`
	Skill             string           `json:"skill"`
	YearsExperience   int              `json:"yearsExperience"`
	Location          string           `json:"location"`
	Contact           string           `json:"contact"`
	Availability      string           `json:"availability"`
	Status            ProfileStatus    `json:"status"`
	BioAI             string           `json:"bioAI,omitempty"`
	SuggestedPriceZAR int              `json:"suggestedPriceZAR"`
	CreatedAt         time.Time        `json:"createdAt"`
	ProfileImage      string           `json:"profileImage,omitempty"`
	PortfolioImages   []string         `json:"portfolioImages,omitempty"`
	CustomerReviews   []CustomerReview `json:"customerReviews,omitempty"`
}

// Approve publishes a profile awaiting moderation.
func (p *LocalProfile) Approve() error {
	if p.Status == ProfilePublished {
		return fmt.Errorf("profile is already published")
	}
	p.Status = ProfilePublished
	return nil
}
