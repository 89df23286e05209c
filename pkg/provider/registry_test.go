package provider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utplsql/utplsql-go/pkg/version"
)

func newStatementRegistry(t *testing.T) *Registry[string] {
	t.Helper()
	r := NewRegistry[string]("test runner statement")
	require.NoError(t, r.Register("3.0.0", "3.0 statement"))
	require.NoError(t, r.Register("4.0.0", "4.0 statement"))
	require.NoError(t, r.Register("3.1.0", "3.1 statement"))
	return r
}

func TestSelectPicksHighestSupported(t *testing.T) {
	r := newStatementRegistry(t)

	tests := []struct {
		remote string
		want   string
	}{
		{"3.0.0", "3.0 statement"},
		{"3.0.4.1372", "3.0 statement"},
		{"3.1.1", "3.1 statement"},
		{"3.1.11.3557", "3.1 statement"},
		{"3.2", "3.1 statement"},
		{"4.0.0", "4.0 statement"},
		{"5.1", "4.0 statement"},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			got, err := r.Select(version.Parse(tt.remote))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectHonorsBugfixAndBuild(t *testing.T) {
	r := NewRegistry[string]("output buffer")
	require.NoError(t, r.Register("3.1.0", "plain"))
	require.NoError(t, r.Register("3.1.7.3085", "tags"))

	got, err := r.Select(version.Parse("3.1.2"))
	require.NoError(t, err)
	assert.Equal(t, "plain", got)

	got, err = r.Select(version.Parse("3.1.7.2808"))
	require.NoError(t, err)
	assert.Equal(t, "plain", got)

	got, err = r.Select(version.Parse("3.1.11"))
	require.NoError(t, err)
	assert.Equal(t, "tags", got)

	// A bare major sorts below any minor.
	_, err = r.Select(version.Parse("3"))
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestSelectNoProvider(t *testing.T) {
	r := newStatementRegistry(t)

	_, err := r.Select(version.Parse("2.3.1"))
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestSelectUnknownVersion(t *testing.T) {
	r := newStatementRegistry(t)

	_, err := r.Select(version.Parse("unknown"))
	assert.ErrorIs(t, err, version.ErrUnsetMajor)
}

func TestRegisterRejectsInvalidAndDuplicate(t *testing.T) {
	r := NewRegistry[int]("output buffer")

	assert.ErrorIs(t, r.Register("abc", 1), ErrInvalidVersion)
	require.NoError(t, r.Register("3.1.7", 1))
	require.NoError(t, r.Register("3.1", 2))
	assert.ErrorIs(t, r.Register("v3.1.7", 3), ErrDuplicateProvider)
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry[int]("output buffer")
	assert.Panics(t, func() { r.MustRegister("", 1) })
}

func TestVersionsSortedDescending(t *testing.T) {
	r := newStatementRegistry(t)

	var got []string
	for _, v := range r.Versions() {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"4.0.0", "3.1.0", "3.0.0"}, got)
}

func TestEmptyRegistry(t *testing.T) {
	r := NewRegistry[func()]("empty")
	_, err := r.Select(version.Parse("3.1.1"))
	assert.True(t, errors.Is(err, ErrNoProvider))
}
