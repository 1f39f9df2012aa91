package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type ProjectID string

type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusInactive  ProjectStatus = "inactive"
	ProjectStatusCompleted ProjectStatus = "completed"
)

const (
	DefaultProjectType     = "residential"
	DefaultProjectCurrency = "INR"
	DefaultProjectAreaUnit = "sqft"
)

func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{
		ProjectStatusDraft,
		ProjectStatusActive,
		ProjectStatusInactive,
		ProjectStatusCompleted,
	}
}

func (s ProjectStatus) Label() string {
	switch s {
	case ProjectStatusDraft:
		return "Draft"
	case ProjectStatusActive:
		return "Active"
	case ProjectStatusInactive:
		return "Inactive"
	case ProjectStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Summary returns "city state", falling back to the address.
func (l Location) Summary() string {
	cityState := strings.TrimSpace(strings.TrimSpace(l.City) + " " + strings.TrimSpace(l.State))
	if cityState != "" {
		return cityState
	}
	return strings.TrimSpace(l.Address)
}

type PriceRange struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type AreaRange struct {
	Min  int64  `json:"min"`
	Max  int64  `json:"max"`
	Unit string `json:"unit"`
}

type CountRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type ContactInfo struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
}

// MediaItem is an uploaded file reference. The API returns either a bare URL
// or an object carrying the URL.
type MediaItem struct {
	ID   string `json:"_id,omitempty"`
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

func (m *MediaItem) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var url string
		if err := json.Unmarshal(trimmed, &url); err != nil {
			return err
		}
		*m = MediaItem{URL: url}
		return nil
	}

	type plain MediaItem
	var decoded plain
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return err
	}
	*m = MediaItem(decoded)
	return nil
}

type Project struct {
	ID          ProjectID     `json:"_id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        string        `json:"type,omitempty"`
	Status      ProjectStatus `json:"status,omitempty"`
	Featured    bool          `json:"featured"`
	IsPublic    bool          `json:"isPublic"`
	Location    Location      `json:"location"`
	Price       PriceRange    `json:"price"`
	Area        AreaRange     `json:"area"`
	Bedrooms    CountRange    `json:"bedrooms"`
	ContactInfo ContactInfo   `json:"contactInfo"`
	Images      []MediaItem   `json:"images,omitempty"`
	Videos      []MediaItem   `json:"videos,omitempty"`
	Documents   []MediaItem   `json:"documents,omitempty"`
	Brochures   []MediaItem   `json:"brochures,omitempty"`
	PublicLink  string        `json:"publicLink,omitempty"`
}

// ExistingFiles lists the media an update keeps. It travels inside the
// multipart "data" field next to the edited project fields.
type ExistingFiles struct {
	Images    []MediaItem `json:"images"`
	Videos    []MediaItem `json:"videos"`
	Documents []MediaItem `json:"documents"`
}

func ExistingFilesFromProject(p Project) ExistingFiles {
	return ExistingFiles{
		Images:    nonNilMedia(p.Images),
		Videos:    nonNilMedia(p.Videos),
		Documents: nonNilMedia(p.Documents),
	}
}

// MediaRemoval names existing media to drop on update. Each reference is
// either the item's URL or its zero-based position in the current list.
type MediaRemoval struct {
	Images    []string
	Videos    []string
	Documents []string
}

// Without returns the files left after applying r. A reference that matches
// nothing is a ValidationError.
func (f ExistingFiles) Without(r MediaRemoval) (ExistingFiles, error) {
	images, err := removeMedia("image", f.Images, r.Images)
	if err != nil {
		return ExistingFiles{}, err
	}
	videos, err := removeMedia("video", f.Videos, r.Videos)
	if err != nil {
		return ExistingFiles{}, err
	}
	documents, err := removeMedia("document", f.Documents, r.Documents)
	if err != nil {
		return ExistingFiles{}, err
	}

	return ExistingFiles{Images: images, Videos: videos, Documents: documents}, nil
}

func removeMedia(kind string, items []MediaItem, refs []string) ([]MediaItem, error) {
	drop := make(map[int]struct{}, len(refs))
	for _, ref := range refs {
		index, ok := findMedia(items, strings.TrimSpace(ref))
		if !ok {
			return nil, &ValidationError{Message: fmt.Sprintf("No existing %s matches %q", kind, ref)}
		}
		drop[index] = struct{}{}
	}

	kept := make([]MediaItem, 0, len(items))
	for i, item := range items {
		if _, ok := drop[i]; !ok {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

func findMedia(items []MediaItem, ref string) (int, bool) {
	for i, item := range items {
		if item.URL == ref {
			return i, true
		}
	}
	if index, err := strconv.Atoi(ref); err == nil && index >= 0 && index < len(items) {
		return index, true
	}
	return 0, false
}

func nonNilMedia(items []MediaItem) []MediaItem {
	if items == nil {
		return []MediaItem{}
	}
	return items
}

// ProjectInput is the create/update payload.
type ProjectInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        string        `json:"type"`
	Status      ProjectStatus `json:"status"`
	Featured    bool          `json:"featured"`
	IsPublic    bool          `json:"isPublic"`
	Location    Location      `json:"location"`
	Price       PriceRange    `json:"price"`
	Area        AreaRange     `json:"area"`
	Bedrooms    CountRange    `json:"bedrooms"`
	ContactInfo ContactInfo   `json:"contactInfo"`
}

func (in *ProjectInput) ApplyDefaults() {
	if in == nil {
		return
	}
	if in.Status == "" {
		in.Status = ProjectStatusDraft
	}
	if strings.TrimSpace(in.Type) == "" {
		in.Type = DefaultProjectType
	}
	if in.Price.Currency == "" {
		in.Price.Currency = DefaultProjectCurrency
	}
	if in.Area.Unit == "" {
		in.Area.Unit = DefaultProjectAreaUnit
	}
}

func (in ProjectInput) Validate() error {
	err := validation.Errors{
		"name":        validation.Validate(strings.TrimSpace(in.Name), validation.Required),
		"description": validation.Validate(strings.TrimSpace(in.Description), validation.Required),
	}.Filter()
	if err != nil {
		return newValidationError("Name and description are required", err)
	}

	statuses := make([]interface{}, 0, len(ProjectStatuses()))
	for _, status := range ProjectStatuses() {
		statuses = append(statuses, status)
	}
	if err := validation.Validate(in.Status, validation.In(statuses...)); err != nil {
		return newValidationError("Status must be one of draft, active, inactive, completed", err)
	}

	if err := validation.Validate(in.ContactInfo.Email, is.EmailFormat); err != nil {
		return newValidationError("Contact email is not a valid email address", err)
	}

	if err := validateRange(in.Price.Min, in.Price.Max); err != nil {
		return newValidationError("Price range is invalid: "+err.Error(), err)
	}
	if err := validateRange(in.Area.Min, in.Area.Max); err != nil {
		return newValidationError("Area range is invalid: "+err.Error(), err)
	}
	if err := validateRange(in.Bedrooms.Min, in.Bedrooms.Max); err != nil {
		return newValidationError("Bedrooms range is invalid: "+err.Error(), err)
	}

	return nil
}

func validateRange(min, max int64) error {
	if err := validation.Validate(min, validation.Min(int64(0)).Error("minimum must not be negative")); err != nil {
		return err
	}
	if max == 0 {
		return nil
	}
	return validation.Validate(max, validation.Min(min).Error("maximum must not be below minimum"))
}

func ProjectInputFromProject(p Project) ProjectInput {
	return ProjectInput{
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		Status:      p.Status,
		Featured:    p.Featured,
		IsPublic:    p.IsPublic,
		Location:    p.Location,
		Price:       p.Price,
		Area:        p.Area,
		Bedrooms:    p.Bedrooms,
		ContactInfo: p.ContactInfo,
	}
}
