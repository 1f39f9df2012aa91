package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironmentName(t *testing.T) {
	tests := []struct {
		raw     string
		want    EnvironmentName
		wantErr bool
	}{
		{raw: "local", want: EnvironmentLocal},
		{raw: " Remote ", want: EnvironmentRemote},
		{raw: "staging", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseEnvironmentName(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownEnvironment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultEnvironmentProfiles(t *testing.T) {
	profiles := DefaultEnvironmentProfiles()

	local, err := profiles.ByName(EnvironmentLocal)
	require.NoError(t, err)
	assert.Equal(t, DefaultLocalBaseURL, local.BaseURL)
	assert.Equal(t, DefaultLocalTimeout, local.Timeout)

	remote, err := profiles.ByName(EnvironmentRemote)
	require.NoError(t, err)
	assert.Equal(t, DefaultRemoteBaseURL, remote.BaseURL)
	assert.Equal(t, DefaultRemoteTimeout, remote.Timeout)

	_, err = profiles.ByName("staging")
	require.ErrorIs(t, err, ErrUnknownEnvironment)
}

func TestEnvironmentProfileJSONTimeout(t *testing.T) {
	profile := DefaultEnvironmentProfiles().Local

	encoded, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name":"local",
		"label":"Local Development",
		"baseURL":"http://localhost:8000",
		"timeout":"10s",
		"timeoutMs":10000,
		"description":"Local backend server"
	}`, string(encoded))

	var decoded EnvironmentProfile
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, profile, decoded)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"remote","timeoutMs":1500}`), &decoded))
	assert.Equal(t, 1500*time.Millisecond, decoded.Timeout)

	assert.Error(t, json.Unmarshal([]byte(`{"name":"remote","timeout":"soon"}`), &decoded))
}

func TestRoleInputNormalizeTrimsAndDeduplicates(t *testing.T) {
	in := RoleInput{
		Name:    "  Sales ",
		Screens: []Screen{" Leads", "Chat", "Leads", "", "  "},
	}

	in.Normalize()

	assert.Equal(t, "Sales", in.Name)
	assert.Equal(t, []Screen{ScreenLeads, ScreenChat}, in.Screens)
}

func TestRoleInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   RoleInput
		message string
	}{
		{name: "missing name", input: RoleInput{Screens: []Screen{ScreenLeads}}, message: "Role name is required"},
		{name: "blank name", input: RoleInput{Name: "   ", Screens: []Screen{ScreenLeads}}, message: "Role name is required"},
		{name: "no screens", input: RoleInput{Name: "Sales"}, message: "Please select at least one screen"},
		{name: "empty screens", input: RoleInput{Name: "Sales", Screens: []Screen{}}, message: "Please select at least one screen"},
		{name: "unknown screen", input: RoleInput{Name: "Sales", Screens: []Screen{"Billing"}}, message: `Unknown screen "Billing"`},
		{name: "valid", input: RoleInput{Name: "Sales", Screens: AvailableScreens()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.message == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestUserInputValidate(t *testing.T) {
	valid := UserInput{Username: "ana", Password: "secret1", Name: "Ana", Role: "r1"}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.Name = " "
	err := missing.Validate()
	require.Error(t, err)
	assert.Equal(t, "All fields are required", err.Error())

	short := valid
	short.Password = "12345"
	err = short.Validate()
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 6 characters long", err.Error())
}

func TestUserRoleUnmarshalAcceptsIDOrObject(t *testing.T) {
	var users []User
	require.NoError(t, json.Unmarshal([]byte(`[
		{"_id":"u1","username":"root","name":"Root","role":{"_id":"r0","name":"superadmin","screens":["Dashboard"]}},
		{"_id":"u2","username":"ana","name":"Ana","role":"r1"},
		{"_id":"u3","username":"bob","name":"Bob","role":null}
	]`), &users))

	require.Len(t, users, 3)
	assert.True(t, users[0].IsSuperAdmin())
	assert.Equal(t, []Screen{ScreenDashboard}, users[0].Role.Screens)
	assert.Equal(t, UserRole{ID: "r1"}, users[1].Role)
	assert.False(t, users[1].IsSuperAdmin())
	assert.Equal(t, UserRole{}, users[2].Role)
}

func TestCredentialsValidate(t *testing.T) {
	require.NoError(t, Credentials{Username: "root", Password: "pw"}.Validate())

	err := Credentials{Username: " ", Password: "pw"}.Validate()
	require.Error(t, err)
	assert.Equal(t, "Username and password are required", err.Error())

	err = Credentials{Username: "root"}.Validate()
	require.Error(t, err)
}

func TestSessionUserIsSuperAdmin(t *testing.T) {
	assert.True(t, SessionUser{Role: RoleSuperAdmin}.IsSuperAdmin())
	assert.False(t, SessionUser{Role: "Superadmin"}.IsSuperAdmin())
	assert.False(t, SessionUser{}.IsSuperAdmin())
}

func TestProjectInputApplyDefaults(t *testing.T) {
	in := ProjectInput{Name: "Skyline", Description: "Towers"}

	in.ApplyDefaults()

	assert.Equal(t, ProjectStatusDraft, in.Status)
	assert.Equal(t, DefaultProjectType, in.Type)
	assert.Equal(t, DefaultProjectCurrency, in.Price.Currency)
	assert.Equal(t, DefaultProjectAreaUnit, in.Area.Unit)
}

func TestProjectInputValidate(t *testing.T) {
	base := ProjectInput{Name: "Skyline", Description: "Towers"}
	base.ApplyDefaults()
	require.NoError(t, base.Validate())

	tests := []struct {
		name    string
		mutate  func(*ProjectInput)
		message string
	}{
		{name: "missing name", mutate: func(in *ProjectInput) { in.Name = "" }, message: "Name and description are required"},
		{name: "missing description", mutate: func(in *ProjectInput) { in.Description = "  " }, message: "Name and description are required"},
		{name: "bad status", mutate: func(in *ProjectInput) { in.Status = "archived" }, message: "Status must be one of draft, active, inactive, completed"},
		{name: "bad email", mutate: func(in *ProjectInput) { in.ContactInfo.Email = "not-an-email" }, message: "Contact email is not a valid email address"},
		{name: "negative price", mutate: func(in *ProjectInput) { in.Price.Min = -1 }, message: "Price range is invalid: minimum must not be negative"},
		{name: "inverted area", mutate: func(in *ProjectInput) { in.Area.Min, in.Area.Max = 900, 500 }, message: "Area range is invalid: maximum must not be below minimum"},
		{name: "inverted bedrooms", mutate: func(in *ProjectInput) { in.Bedrooms.Min, in.Bedrooms.Max = 3, 2 }, message: "Bedrooms range is invalid: maximum must not be below minimum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)

			err := in.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestProjectUnmarshalMediaAsURLOrObject(t *testing.T) {
	var project Project
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id":"p1",
		"name":"Skyline",
		"images":["https://cdn.test/a.jpg",{"_id":"m2","url":"https://cdn.test/b.jpg","name":"b.jpg"}]
	}`), &project))

	require.Len(t, project.Images, 2)
	assert.Equal(t, MediaItem{URL: "https://cdn.test/a.jpg"}, project.Images[0])
	assert.Equal(t, MediaItem{ID: "m2", URL: "https://cdn.test/b.jpg", Name: "b.jpg"}, project.Images[1])
}

func TestExistingFilesFromProjectNeverNil(t *testing.T) {
	files := ExistingFilesFromProject(Project{Images: []MediaItem{{URL: "a"}}})

	encoded, err := json.Marshal(files)
	require.NoError(t, err)
	assert.JSONEq(t, `{"images":[{"url":"a"}],"videos":[],"documents":[]}`, string(encoded))
}

func TestExistingFilesWithout(t *testing.T) {
	files := ExistingFiles{
		Images:    []MediaItem{{URL: "a.jpg"}, {URL: "b.jpg"}, {URL: "c.jpg"}},
		Videos:    []MediaItem{{URL: "tour.mp4"}},
		Documents: []MediaItem{{URL: "plan.pdf"}},
	}

	kept, err := files.Without(MediaRemoval{
		Images:    []string{"c.jpg", "0", " c.jpg "},
		Documents: []string{"plan.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, []MediaItem{{URL: "b.jpg"}}, kept.Images)
	assert.Equal(t, []MediaItem{{URL: "tour.mp4"}}, kept.Videos)
	assert.NotNil(t, kept.Documents)
	assert.Empty(t, kept.Documents)
	assert.Len(t, files.Images, 3)

	_, err = files.Without(MediaRemoval{Videos: []string{"1"}})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, `No existing video matches "1"`, validationErr.Message)
}

func TestLocationSummary(t *testing.T) {
	assert.Equal(t, "Mumbai MH", Location{City: "Mumbai", State: "MH", Address: "1 Marine Dr"}.Summary())
	assert.Equal(t, "1 Marine Dr", Location{Address: " 1 Marine Dr "}.Summary())
	assert.Equal(t, "", Location{}.Summary())
}

func TestRequestErrorTimeout(t *testing.T) {
	assert.False(t, (&RequestError{Message: "boom"}).Timeout())
	assert.True(t, (&RequestError{Err: fmt.Errorf("call: %w", context.DeadlineExceeded)}).Timeout())

	var nilErr *RequestError
	assert.False(t, nilErr.Timeout())
}

func TestResponseDecodeRequiresJSON(t *testing.T) {
	var v map[string]any

	err := Response{Text: "hello"}.Decode(&v)
	require.ErrorIs(t, err, ErrResponseNotJSON)
	assert.Equal(t, "hello", Response{Text: "hello"}.String())

	resp := Response{JSON: json.RawMessage(` {"a":1} `)}
	require.NoError(t, resp.Decode(&v))
	assert.Equal(t, float64(1), v["a"])
	assert.Equal(t, `{"a":1}`, resp.String())
}
