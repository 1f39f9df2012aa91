package domain

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type RoleID string

type Screen string

const (
	ScreenDashboard  Screen = "Dashboard"
	ScreenLeads      Screen = "Leads"
	ScreenSiteVisits Screen = "SiteVisits"
	ScreenProperties Screen = "Properties"
	ScreenBookings   Screen = "Bookings"
	ScreenPayments   Screen = "Payments"
	ScreenChat       Screen = "Chat"
	ScreenSiteStaff  Screen = "SiteStaff"
	ScreenReports    Screen = "Reports"
)

func AvailableScreens() []Screen {
	return []Screen{
		ScreenDashboard,
		ScreenLeads,
		ScreenSiteVisits,
		ScreenProperties,
		ScreenBookings,
		ScreenPayments,
		ScreenChat,
		ScreenSiteStaff,
		ScreenReports,
	}
}

type Role struct {
	ID      RoleID   `json:"_id,omitempty"`
	Name    string   `json:"name"`
	Screens []Screen `json:"screens"`
}

// RoleInput is the payload accepted by the create and update endpoints.
type RoleInput struct {
	Name    string   `json:"name"`
	Screens []Screen `json:"screens"`
}

func (in *RoleInput) Normalize() {
	if in == nil {
		return
	}

	in.Name = strings.TrimSpace(in.Name)

	screens := make([]Screen, 0, len(in.Screens))
	seen := make(map[Screen]struct{}, len(in.Screens))
	for _, screen := range in.Screens {
		trimmed := Screen(strings.TrimSpace(string(screen)))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		screens = append(screens, trimmed)
	}
	in.Screens = screens
}

func (in RoleInput) Validate() error {
	if err := validation.Validate(strings.TrimSpace(in.Name),
		validation.Required.Error("Role name is required"),
	); err != nil {
		return newValidationError(err.Error(), err)
	}

	if err := validation.Validate(in.Screens,
		validation.Required.Error("Please select at least one screen"),
	); err != nil {
		return newValidationError(err.Error(), err)
	}

	known := make([]interface{}, 0, len(AvailableScreens()))
	for _, screen := range AvailableScreens() {
		known = append(known, screen)
	}
	for _, screen := range in.Screens {
		if err := validation.Validate(screen, validation.In(known...)); err != nil {
			return newValidationError(fmt.Sprintf("Unknown screen %q", screen), err)
		}
	}

	return nil
}
