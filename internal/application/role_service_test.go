package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoleServiceListDecodesRoles(t *testing.T) {
	api := mocks.NewMockAPIClient(t)
	service := NewRoleService(api)

	api.EXPECT().Call(mockAnyContext(), "/roles", requestWith(domain.MethodGet)).
		Return(jsonResponse(`[{"_id":"r1","name":"Sales","screens":["Leads","Chat"]}]`), nil).Once()

	roles, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Role{{ID: "r1", Name: "Sales", Screens: []domain.Screen{"Leads", "Chat"}}}, roles)
}

func TestRoleServiceCreateRejectsEmptyScreensWithoutCallingAPI(t *testing.T) {
	api := mocks.NewMockAPIClient(t)
	service := NewRoleService(api)

	_, err := service.Create(context.Background(), domain.RoleInput{Name: "X", Screens: nil})

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Please select at least one screen", validationErr.Message)
	api.AssertNotCalled(t, "Call", mock.Anything, mock.Anything, mock.Anything)
}

func TestRoleServiceCreateRejectsBlankName(t *testing.T) {
	service := NewRoleService(mocks.NewMockAPIClient(t))

	_, err := service.Create(context.Background(), domain.RoleInput{Name: "   ", Screens: []domain.Screen{"Leads"}})
	require.EqualError(t, err, "Role name is required")
}

func TestRoleServiceCreateNormalizesAndPosts(t *testing.T) {
	api := mocks.NewMockAPIClient(t)
	service := NewRoleService(api)

	api.EXPECT().Call(mockAnyContext(), "/roles", mock.MatchedBy(func(req domain.Request) bool {
		input, ok := req.Body.(domain.RoleInput)
		return ok && req.Method == domain.MethodPost &&
			input.Name == "Sales" &&
			assert.ObjectsAreEqual([]domain.Screen{"Leads", "Chat"}, input.Screens)
	})).Return(jsonResponse(`{"_id":"r9","name":"Sales","screens":["Leads","Chat"]}`), nil).Once()

	role, err := service.Create(context.Background(), domain.RoleInput{
		Name:    " Sales ",
		Screens: []domain.Screen{"Leads", "Chat", "Leads"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleID("r9"), role.ID)
}

func TestRoleServiceCreateSurfacesServerValidation(t *testing.T) {
	api := mocks.NewMockAPIClient(t)
	service := NewRoleService(api)

	api.EXPECT().Call(mockAnyContext(), "/roles", mock.Anything).
		Return(domain.Response{}, &domain.RequestError{Status: 400, Message: "Role name is required"}).Once()

	_, err := service.Create(context.Background(), domain.RoleInput{Name: "Sales", Screens: []domain.Screen{"Leads"}})
	require.ErrorContains(t, err, "Role name is required")
}

func TestRoleServiceUpdateFallsBackToInputWhenResponseIsBare(t *testing.T) {
	api := mocks.NewMockAPIClient(t)
	service := NewRoleService(api)

	api.EXPECT().Call(mockAnyContext(), "/roles/r1", requestWith(domain.MethodPut)).
		Return(jsonResponse(`{"message":"Role updated"}`), nil).Once()

	role, err := service.Update(context.Background(), "r1", domain.RoleInput{Name: "Ops", Screens: []domain.Screen{"Reports"}})
	require.NoError(t, err)
	assert.Equal(t, domain.Role{ID: "r1", Name: "Ops", Screens: []domain.Screen{"Reports"}}, role)
}

func TestRoleServiceGetUnwrapsEnvelope(t *testing.T) {
	api := mocks.NewMockAPIClient(t)
	service := NewRoleService(api)

	api.EXPECT().Call(mockAnyContext(), "/roles/r1", mock.Anything).
		Return(jsonResponse(`{"role":{"_id":"r1","name":"Sales","screens":["Leads"]}}`), nil).Once()

	role, err := service.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Sales", role.Name)
}

func TestRoleServiceDeleteRequiresID(t *testing.T) {
	service := NewRoleService(mocks.NewMockAPIClient(t))

	err := service.Delete(context.Background(), " ")
	require.ErrorIs(t, err, domain.ErrMissingID)
}

func TestRoleServiceDeleteEscapesID(t *testing.T) {
	api := mocks.NewMockAPIClient(t)
	service := NewRoleService(api)

	api.EXPECT().Call(mockAnyContext(), "/roles/a%2Fb", requestWith(domain.MethodDelete)).
		Return(jsonResponse(`{}`), nil).Once()

	require.NoError(t, service.Delete(context.Background(), "a/b"))
}
