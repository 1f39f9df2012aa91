// Package console renders command output for a terminal with lipgloss.
package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/estate-admin-cli/internal/application"
	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	markerActive   = "●"
	markerInactive = "○"
)

func Environment(status application.EnvironmentStatus) (string, error) {
	return render(func(s styles) string { return environmentView(status, s) })
}

func Detection(result application.DetectResult) (string, error) {
	return render(func(s styles) string { return detectionView(result, s) })
}

func Session(session domain.Session) (string, error) {
	return render(func(s styles) string { return sessionView(session, s) })
}

func Roles(roles []domain.Role) (string, error) {
	return render(func(s styles) string { return rolesView(roles, s) })
}

func Role(role domain.Role) (string, error) {
	return render(func(s styles) string { return roleDetail(role, s) })
}

func Users(users []domain.User) (string, error) {
	return render(func(s styles) string { return usersView(users, s) })
}

func Projects(projects []domain.Project) (string, error) {
	return render(func(s styles) string { return projectsView(projects, s) })
}

func Project(project domain.Project) (string, error) {
	return render(func(s styles) string { return projectDetail(project, s) })
}

func environmentView(status application.EnvironmentStatus, s styles) string {
	lines := []string{s.title.Render("API Environment")}

	mode := "auto (probe local, fall back to remote)"
	if status.Preference != nil {
		mode = fmt.Sprintf("pinned to %s", status.Preference.Environment)
	}
	lines = append(lines, s.header.Render("mode: "+mode))

	for _, profile := range []domain.EnvironmentProfile{status.Profiles.Local, status.Profiles.Remote} {
		active := status.Resolved && status.Active.Name == profile.Name
		lines = append(lines, s.section.Render(profileBlock(profile, active, s)))
	}

	if !status.Resolved {
		lines = append(lines, s.section.Render(s.empty.Render("Not resolved yet; the first API call probes the local backend.")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func profileBlock(profile domain.EnvironmentProfile, active bool, s styles) string {
	marker := s.inactive.Render(markerInactive)
	name := s.detail.Render(profile.Label)
	if active {
		marker = s.active.Render(markerActive)
		name = s.item.Render(profile.Label)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		marker+" "+name+" "+s.header.Render("("+string(profile.Name)+")"),
		"  "+field(s, "url", profile.BaseURL),
		"  "+field(s, "timeout", profile.Timeout.String()),
	)
}

func detectionView(result application.DetectResult, s styles) string {
	reachability := s.warning.Render("unreachable")
	if result.Reachable {
		reachability = s.active.Render("reachable")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Environment Detection"),
		field(s, "local", reachability),
		field(s, "selected", s.item.Render(result.Profile.Label)+" "+s.header.Render("("+string(result.Profile.Name)+")")),
		field(s, "url", result.Profile.BaseURL),
		field(s, "took", result.Elapsed.Round(time.Millisecond).String()),
	)
}

func sessionView(session domain.Session, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Signed in"),
		field(s, "name", s.item.Render(session.User.Name)),
		field(s, "role", session.User.Role),
	)
}

func rolesView(roles []domain.Role, s styles) string {
	lines := []string{
		s.title.Render("Roles"),
		s.header.Render(fmt.Sprintf("roles: %d", len(roles))),
	}

	if len(roles) == 0 {
		lines = append(lines, s.empty.Render("No roles found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, role := range roles {
		lines = append(lines, s.section.Render(roleDetail(role, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func roleDetail(role domain.Role, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.item.Render(role.Name)+" "+s.header.Render("("+string(role.ID)+")"),
		field(s, "screens", joinScreens(role.Screens)),
	)
}

func usersView(users []domain.User, s styles) string {
	lines := []string{
		s.title.Render("Users"),
		s.header.Render(fmt.Sprintf("users: %d", len(users))),
	}

	if len(users) == 0 {
		lines = append(lines, s.empty.Render("No users found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, user := range users {
		title := s.item.Render(user.Name) + " " + s.header.Render("@"+user.Username+" ("+string(user.ID)+")")
		if user.IsSuperAdmin() {
			title += " " + s.warning.Render("[protected]")
		}

		roleName := user.Role.Name
		if roleName == "" {
			roleName = "No Role"
		}
		screens := "No Screens"
		if len(user.Role.Screens) > 0 {
			screens = joinScreens(user.Role.Screens)
		}

		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			field(s, "role", roleName),
			field(s, "screens", screens),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func projectsView(projects []domain.Project, s styles) string {
	lines := []string{
		s.title.Render("Projects"),
		s.header.Render(fmt.Sprintf("projects: %d", len(projects))),
	}

	if len(projects) == 0 {
		lines = append(lines, s.empty.Render("No projects found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, project := range projects {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			projectTitle(project, s),
			field(s, "type", orDash(project.Type)),
			field(s, "location", orDash(project.Location.Summary())),
			field(s, "price", formatPrice(project.Price)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func projectDetail(project domain.Project, s styles) string {
	lines := []string{
		projectTitle(project, s),
		s.detail.Render(project.Description),
		"",
		field(s, "type", orDash(project.Type)),
		field(s, "location", orDash(formatAddress(project.Location))),
		field(s, "price", formatPrice(project.Price)),
		field(s, "area", formatArea(project.Area)),
		field(s, "bedrooms", formatRange(project.Bedrooms.Min, project.Bedrooms.Max, "")),
		field(s, "phone", orDash(project.ContactInfo.Phone)),
		field(s, "email", orDash(project.ContactInfo.Email)),
		field(s, "whatsapp", orDash(project.ContactInfo.WhatsApp)),
		field(s, "media", fmt.Sprintf("%d images, %d videos, %d documents, %d brochures",
			len(project.Images), len(project.Videos), len(project.Documents), len(project.Brochures))),
	}
	if project.PublicLink != "" {
		lines = append(lines, field(s, "public", s.link.Render(project.PublicLink)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func projectTitle(project domain.Project, s styles) string {
	title := s.item.Render(project.Name) + " " + s.header.Render("("+string(project.ID)+")")
	title += " " + s.status(project.Status).Render("["+project.Status.Label()+"]")

	var flags []string
	if project.Featured {
		flags = append(flags, "featured")
	}
	if project.IsPublic {
		flags = append(flags, "public")
	}
	if len(flags) > 0 {
		title += " " + s.header.Render(strings.Join(flags, ", "))
	}
	return title
}

func field(s styles, name, value string) string {
	return s.label.Render(name+":") + " " + value
}

func joinScreens(screens []domain.Screen) string {
	if len(screens) == 0 {
		return "-"
	}
	names := make([]string, 0, len(screens))
	for _, screen := range screens {
		names = append(names, string(screen))
	}
	return strings.Join(names, ", ")
}

func formatAddress(l domain.Location) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{l.Address, l.City, l.State, l.Pincode} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

func formatPrice(p domain.PriceRange) string {
	if p.Min == 0 && p.Max == 0 {
		return "-"
	}
	return strings.TrimSpace(p.Currency + " " + formatRange(p.Min, p.Max, ""))
}

func formatArea(a domain.AreaRange) string {
	return formatRange(a.Min, a.Max, a.Unit)
}

func formatRange(min, max int64, unit string) string {
	var out string
	switch {
	case min == 0 && max == 0:
		return "-"
	case max == 0 || max == min:
		out = groupDigits(min)
	default:
		out = groupDigits(min) + " - " + groupDigits(max)
	}
	if unit != "" {
		out += " " + unit
	}
	return out
}

func groupDigits(n int64) string {
	raw := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	var b strings.Builder
	for i, r := range raw {
		if i > 0 && (len(raw)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
