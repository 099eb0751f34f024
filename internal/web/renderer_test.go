package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxiservice/internal/form"
	"taxiservice/internal/model"
)

func TestRenderer_DriverForm(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "driver_form", map[string]interface{}{
		"form":   form.DriverCreationForm{Username: "new_user", LicenseNumber: "ABC1234"},
		"errors": map[string]string{"license_number": "License number must consist of 8 characters"},
		"user":   &model.Driver{ID: 1, Username: "admin"},
	}, nil)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `value="new_user"`)
	assert.Contains(t, out, "License number must consist of 8 characters")
	assert.Contains(t, out, "/accounts/logout")
	assert.Contains(t, out, `<a href="/drivers/1">Profile</a>`)
	assert.NotContains(t, out, "admin")
}

func TestRenderer_LoginWithoutUser(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "login", map[string]interface{}{
		"form": form.LoginForm{Next: "/cars"},
	}, nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `name="next" value="/cars"`)
	assert.NotContains(t, buf.String(), "/accounts/logout")
}

func TestRenderer_Lists(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	me := &model.Driver{ID: 2, Username: "testuser2"}
	var buf bytes.Buffer
	err = r.Render(&buf, "driver_list", map[string]interface{}{
		"drivers": []model.Driver{{ID: 1, Username: "testuser1"}, *me},
		"query":   "testuser",
		"user":    me,
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "testuser2</a> (Me)")

	buf.Reset()
	err = r.Render(&buf, "car_list", map[string]interface{}{"cars": []model.Car{}, "user": me}, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "There are no cars in taxi.")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	assert.False(t, r.Has("base"))
	assert.True(t, r.Has("index"))
	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", nil, nil))
}
