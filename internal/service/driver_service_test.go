package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taxiservice/internal/auth"
	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/form"
	"taxiservice/internal/model"
	"taxiservice/internal/search"
)

func newTestDriverService(repo *MockDriverRepository) DriverService {
	return NewDriverService(
		repo,
		nil,
		auth.NewPasswordHasher(bcrypt.MinCost),
		form.PasswordPolicy{Enabled: true, MinLength: 8},
		search.Options{},
	)
}

func validDriverForm() form.DriverCreationForm {
	return form.DriverCreationForm{
		Username:      "new_user",
		Password1:     "user12test",
		Password2:     "user12test",
		FirstName:     "Test first",
		LastName:      "Test last",
		LicenseNumber: "ABC12345",
	}
}

func TestDriverService_List(t *testing.T) {
	stored := []model.Driver{
		{ID: 1, Username: "testuser1"},
		{ID: 2, Username: "testuser2"},
		{ID: 3, Username: "anotheruser"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"partial match", "testuser", []string{"testuser1", "testuser2"}},
		{"empty search", "", []string{"testuser1", "testuser2", "anotheruser"}},
		{"no results", "nonexistent", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDriverRepository)
			repo.On("List", mock.Anything).Return(stored, nil)

			got, err := newTestDriverService(repo).List(context.Background(), tt.query)

			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, d := range got {
				names = append(names, d.Username)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDriverService_Create(t *testing.T) {
	repo := new(MockDriverRepository)
	repo.On("FindByUsername", mock.Anything, "new_user").Return(nil, apperrors.ErrNotFound)
	repo.On("FindByLicenseNumber", mock.Anything, "ABC12345").Return(nil, apperrors.ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Driver) bool {
		return d.Username == "new_user" && d.LicenseNumber == "ABC12345" && d.PasswordHash != "user12test"
	})).Return(nil)

	driver, err := newTestDriverService(repo).Create(context.Background(), validDriverForm())

	require.NoError(t, err)
	assert.Equal(t, "new_user (Test first Test last)", driver.String())
	assert.True(t, auth.NewPasswordHasher(bcrypt.MinCost).Check(driver.PasswordHash, "user12test"))
	repo.AssertExpectations(t)
}

func TestDriverService_CreateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f *form.DriverCreationForm)
		field string
		msg   string
	}{
		{
			name:  "short license",
			edit:  func(f *form.DriverCreationForm) { f.LicenseNumber = "ABC1234" },
			field: "license_number",
			msg:   "License number must consist of 8 characters",
		},
		{
			name:  "lowercase prefix",
			edit:  func(f *form.DriverCreationForm) { f.LicenseNumber = "abc12345" },
			field: "license_number",
			msg:   "First 3 characters must be uppercase letters",
		},
		{
			name:  "letters in suffix",
			edit:  func(f *form.DriverCreationForm) { f.LicenseNumber = "ABC1234A" },
			field: "license_number",
			msg:   "Last 5 characters must be digits",
		},
		{
			name:  "password mismatch",
			edit:  func(f *form.DriverCreationForm) { f.Password2 = "user12tess" },
			field: "password2",
			msg:   "The two password fields didn't match.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDriverRepository)
			f := validDriverForm()
			tt.edit(&f)

			_, err := newTestDriverService(repo).Create(context.Background(), f)

			verr, ok := apperrors.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tt.msg, verr.Fields[tt.field])
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestDriverService_CreateTaken(t *testing.T) {
	repo := new(MockDriverRepository)
	repo.On("FindByUsername", mock.Anything, "new_user").Return(&model.Driver{ID: 1}, nil)
	repo.On("FindByLicenseNumber", mock.Anything, "ABC12345").Return(&model.Driver{ID: 2}, nil)

	_, err := newTestDriverService(repo).Create(context.Background(), validDriverForm())

	verr, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, usernameTaken, verr.Fields["username"])
	assert.Equal(t, licenseNumberTaken, verr.Fields["license_number"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDriverService_CreateConcurrentDuplicate(t *testing.T) {
	tests := []struct {
		name          string
		usernameTaken bool
		licenseTaken  bool
		want          map[string]string
	}{
		{
			name:         "license claimed",
			licenseTaken: true,
			want:         map[string]string{"license_number": licenseNumberTaken},
		},
		{
			name:          "username claimed",
			usernameTaken: true,
			want:          map[string]string{"username": usernameTaken},
		},
		{
			name: "unknown constraint",
			want: map[string]string{apperrors.NonFieldErrors: driverExists},
		},
	}

	lookup := func(taken bool, id uint) (*model.Driver, error) {
		if taken {
			return &model.Driver{ID: id}, nil
		}
		return nil, apperrors.ErrNotFound
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDriverRepository)
			repo.On("FindByUsername", mock.Anything, "new_user").Return(nil, apperrors.ErrNotFound).Once()
			repo.On("FindByLicenseNumber", mock.Anything, "ABC12345").Return(nil, apperrors.ErrNotFound).Once()
			repo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("create driver: %w", apperrors.ErrDuplicate))
			d, err := lookup(tt.usernameTaken, 3)
			repo.On("FindByUsername", mock.Anything, "new_user").Return(d, err).Once()
			d, err = lookup(tt.licenseTaken, 4)
			repo.On("FindByLicenseNumber", mock.Anything, "ABC12345").Return(d, err).Once()

			_, err = newTestDriverService(repo).Create(context.Background(), validDriverForm())

			verr, ok := apperrors.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, verr.Fields)
			repo.AssertExpectations(t)
		})
	}
}

func TestDriverService_UpdateLicense(t *testing.T) {
	tests := []struct {
		name      string
		license   string
		other     *model.Driver
		wantErr   bool
		expectUpd bool
	}{
		{name: "new number", license: "XYZ00001", expectUpd: true},
		{name: "same number", license: "ABC12345"},
		{name: "taken number", license: "XYZ00001", other: &model.Driver{ID: 8}, wantErr: true},
		{name: "bad format", license: "XYZ0001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDriverRepository)
			repo.On("FindByID", mock.Anything, uint(7)).
				Return(&model.Driver{ID: 7, Username: "d", LicenseNumber: "ABC12345"}, nil)
			if tt.other != nil {
				repo.On("FindByLicenseNumber", mock.Anything, tt.license).Return(tt.other, nil)
			} else {
				repo.On("FindByLicenseNumber", mock.Anything, tt.license).Return(nil, apperrors.ErrNotFound).Maybe()
			}
			if tt.expectUpd {
				repo.On("UpdateLicenseNumber", mock.Anything, uint(7), tt.license).Return(nil)
			}

			driver, err := newTestDriverService(repo).
				UpdateLicense(context.Background(), 7, form.LicenseUpdateForm{LicenseNumber: tt.license})

			if tt.wantErr {
				_, ok := apperrors.AsValidation(err)
				assert.True(t, ok)
				repo.AssertNotCalled(t, "UpdateLicenseNumber", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.license, driver.LicenseNumber)
			repo.AssertExpectations(t)
		})
	}
}

func TestDriverService_CurrentDropsCars(t *testing.T) {
	repo := new(MockDriverRepository)
	repo.On("FindByID", mock.Anything, uint(3)).
		Return(&model.Driver{ID: 3, Username: "admin", Cars: []model.Car{{ID: 1}}}, nil)

	driver, err := newTestDriverService(repo).Current(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "admin", driver.Username)
	assert.Empty(t, driver.Cars)
}

func TestDriverService_DeleteMissing(t *testing.T) {
	repo := new(MockDriverRepository)
	repo.On("FindByID", mock.Anything, uint(3)).Return(nil, apperrors.ErrNotFound)

	err := newTestDriverService(repo).Delete(context.Background(), 3)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
