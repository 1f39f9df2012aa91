package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
)

const projectsEndpoint = "/projects"

type ProjectService struct {
	api ports.APIClient
}

func NewProjectService(api ports.APIClient) *ProjectService {
	return &ProjectService{api: api}
}

func (s *ProjectService) List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error) {
	resp, err := s.api.Call(ctx, projectsEndpoint, domain.Request{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects, err := decodeList[domain.Project](resp, "projects", "data")
	if err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	matched := make([]domain.Project, 0, len(projects))
	for _, project := range projects {
		if filter.Match(project) {
			matched = append(matched, project)
		}
	}
	return matched, nil
}

func (s *ProjectService) Get(ctx context.Context, id domain.ProjectID) (domain.Project, error) {
	path, err := resourcePath(projectsEndpoint, string(id))
	if err != nil {
		return domain.Project{}, err
	}

	resp, err := s.api.Call(ctx, path, domain.Request{})
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}

	project, err := decodeItem[domain.Project](resp, "project", "data")
	if err != nil {
		return domain.Project{}, fmt.Errorf("decode project: %w", err)
	}
	return project, nil
}

// Create sends JSON when there are no files and multipart otherwise. In the
// multipart form scalar fields are strings and nested objects JSON strings.
func (s *ProjectService) Create(ctx context.Context, cmd CreateProjectCommand) (domain.Project, error) {
	input := cmd.Input
	input.ApplyDefaults()
	if err := input.Validate(); err != nil {
		return domain.Project{}, err
	}

	req := domain.Request{Method: domain.MethodPost, Body: input}
	if cmd.hasFiles() {
		form, err := createProjectForm(input, cmd)
		if err != nil {
			return domain.Project{}, err
		}
		req.Body = form
	}

	resp, err := s.api.Call(ctx, projectsEndpoint, req)
	if err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}

	return projectFromResponse(resp, "", input), nil
}

// Update is always multipart: the project JSON and the media to keep travel
// in the "data" field, new uploads as file parts.
func (s *ProjectService) Update(ctx context.Context, cmd UpdateProjectCommand) (domain.Project, error) {
	path, err := resourcePath(projectsEndpoint, string(cmd.ID))
	if err != nil {
		return domain.Project{}, err
	}

	input := cmd.Input
	input.ApplyDefaults()
	if err := input.Validate(); err != nil {
		return domain.Project{}, err
	}

	existing, err := cmd.Existing.Without(cmd.Remove)
	if err != nil {
		return domain.Project{}, err
	}

	data, err := jsonField(struct {
		domain.ProjectInput
		ExistingFiles domain.ExistingFiles `json:"existingFiles"`
	}{ProjectInput: input, ExistingFiles: existing})
	if err != nil {
		return domain.Project{}, err
	}

	form := &domain.MultipartForm{}
	form.Add("data", data)
	addFiles(form, "images", cmd.Images)
	addFiles(form, "videos", cmd.Videos)
	addFiles(form, "documents", cmd.Documents)

	resp, err := s.api.Call(ctx, path, domain.Request{Method: domain.MethodPut, Body: form})
	if err != nil {
		return domain.Project{}, fmt.Errorf("update project %s: %w", cmd.ID, err)
	}

	return projectFromResponse(resp, cmd.ID, input), nil
}

func (s *ProjectService) Delete(ctx context.Context, id domain.ProjectID) error {
	path, err := resourcePath(projectsEndpoint, string(id))
	if err != nil {
		return err
	}

	if _, err := s.api.Call(ctx, path, domain.Request{Method: domain.MethodDelete}); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}

type shareResponse struct {
	ShareLink  string `json:"shareLink"`
	PublicLink string `json:"publicLink"`
}

// Share asks the API for a public link, preferring shareLink over publicLink.
func (s *ProjectService) Share(ctx context.Context, id domain.ProjectID) (string, error) {
	path, err := resourcePath(projectsEndpoint, string(id), "share")
	if err != nil {
		return "", err
	}

	resp, err := s.api.Call(ctx, path, domain.Request{Method: domain.MethodPost})
	if err != nil {
		return "", fmt.Errorf("share project %s: %w", id, err)
	}

	var payload shareResponse
	if err := resp.Decode(&payload); err != nil {
		return "", fmt.Errorf("decode share response: %w", err)
	}
	for _, link := range []string{payload.ShareLink, payload.PublicLink} {
		if link = strings.TrimSpace(link); link != "" {
			return link, nil
		}
	}
	return "", fmt.Errorf("share project %s: %w", id, domain.ErrShareLinkMissing)
}

func createProjectForm(input domain.ProjectInput, cmd CreateProjectCommand) (*domain.MultipartForm, error) {
	form := &domain.MultipartForm{}
	form.Add("name", input.Name)
	form.Add("description", input.Description)
	form.Add("type", input.Type)
	form.Add("status", string(input.Status))
	form.Add("featured", strconv.FormatBool(input.Featured))
	form.Add("isPublic", strconv.FormatBool(input.IsPublic))

	nested := []struct {
		name  string
		value any
	}{
		{name: "location", value: input.Location},
		{name: "price", value: input.Price},
		{name: "area", value: input.Area},
		{name: "bedrooms", value: input.Bedrooms},
		{name: "contactInfo", value: input.ContactInfo},
	}
	for _, field := range nested {
		encoded, err := jsonField(field.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", field.name, err)
		}
		form.Add(field.name, encoded)
	}

	addFiles(form, "images", cmd.Images)
	addFiles(form, "videos", cmd.Videos)
	addFiles(form, "brochures", cmd.Brochures)
	return form, nil
}

func addFiles(form *domain.MultipartForm, field string, files []domain.FormFile) {
	for _, file := range files {
		form.AddFile(field, file.FileName, file.Content)
	}
}

func projectFromResponse(resp domain.Response, id domain.ProjectID, input domain.ProjectInput) domain.Project {
	project, err := decodeItem[domain.Project](resp, "project", "data")
	if err == nil && project.Name != "" {
		if project.ID == "" {
			project.ID = id
		}
		return project
	}

	return domain.Project{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Status:      input.Status,
		Featured:    input.Featured,
		IsPublic:    input.IsPublic,
		Location:    input.Location,
		Price:       input.Price,
		Area:        input.Area,
		Bedrooms:    input.Bedrooms,
		ContactInfo: input.ContactInfo,
	}
}
