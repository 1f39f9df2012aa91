package application

import (
	"testing"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcePath(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		id         string
		suffix     []string
		want       string
	}{
		{name: "role", collection: rolesEndpoint, id: "r1", want: "/roles/r1"},
		{name: "user", collection: usersEndpoint, id: "u2", want: "/users/u2"},
		{name: "share suffix", collection: projectsEndpoint, id: "p1", suffix: []string{"share"}, want: "/projects/p1/share"},
		{name: "escaped id", collection: rolesEndpoint, id: "a/b c", want: "/roles/a%2Fb%20c"},
		{name: "bare collection", collection: "roles", id: "r1", want: "/roles/r1"},
		{name: "trailing slash", collection: "/roles/", id: " r1 ", want: "/roles/r1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resourcePath(tt.collection, tt.id, tt.suffix...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResourcePathRequiresID(t *testing.T) {
	_, err := resourcePath(rolesEndpoint, "  ")
	require.ErrorIs(t, err, domain.ErrMissingID)
}
