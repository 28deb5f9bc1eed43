package profile

import (
	"context"

	"github.com/xinyujieHong/CSEN174-Project/internal/app"
	"github.com/xinyujieHong/CSEN174-Project/internal/db"
	svcErr "github.com/xinyujieHong/CSEN174-Project/internal/errors"
	"github.com/xinyujieHong/CSEN174-Project/internal/repository"
	"github.com/xinyujieHong/CSEN174-Project/internal/validate"
)

// Service implements profile reads and the validated overwrite-on-edit
// save.
type Service struct {
	appCtx   *app.AppContext
	profiles *repository.ProfileRepository
}

// NewService creates the profile service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		profiles: repository.NewProfileRepository(appCtx.DB),
	}
}

// SaveInput carries the profile fields as submitted by the form.
type SaveInput struct {
	Name           string  `json:"name"`
	College        string  `json:"college"`
	Major          string  `json:"major"`
	GraduationYear int     `json:"graduationYear"`
	PhoneNumber    string  `json:"phoneNumber"`
	HasCar         bool    `json:"hasCar"`
	Bio            string  `json:"bio"`
	CarModel       string  `json:"carModel"`
	CarColor       string  `json:"carColor"`
	CarYear        string  `json:"carYear"`
	CarLicense     string  `json:"carLicense"`
	CarCapacity    float64 `json:"carCapacity"`
	ProfilePicture string  `json:"profilePicture"`
}

// Get returns a user's profile.
func (s *Service) Get(ctx context.Context, userID string) (*db.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return p, nil
}

// Save validates and overwrites the user's profile.
//
// The without-car completeness gate always applies; car details are
// additionally required when hasCar is set. The cross-field invariant
// lives here, not in the schema.
func (s *Service) Save(ctx context.Context, userID string, in SaveInput) (*db.Profile, error) {
	fields := validate.ProfileFields{
		College:        in.College,
		Major:          in.Major,
		GraduationYear: in.GraduationYear,
		CarModel:       in.CarModel,
		CarCapacity:    in.CarCapacity,
		LicensePlate:   in.CarLicense,
	}

	if !validate.IsCompleteProfileWithoutCar(fields) {
		return nil, svcErr.InvalidArgument("college, major and graduation year are required")
	}
	if in.HasCar && !validate.IsCompleteProfileWithCar(fields) {
		return nil, svcErr.InvalidArgument("car model, capacity and license plate are required when you have a car")
	}
	if in.PhoneNumber != "" && !validate.IsValidPhoneNumber(in.PhoneNumber) {
		return nil, svcErr.InvalidArgument("invalid phone number")
	}
	if !validate.IsValidBio(in.Bio, 0) {
		return nil, svcErr.InvalidArgument("bio is too long")
	}

	p := db.Profile{
		UserID:         userID,
		Name:           validate.SanitizeInput(in.Name, 0),
		College:        validate.SanitizeInput(in.College, 0),
		Major:          validate.SanitizeInput(in.Major, 0),
		GraduationYear: in.GraduationYear,
		PhoneNumber:    validate.SanitizeInput(in.PhoneNumber, 0),
		HasCar:         in.HasCar,
		Bio:            in.Bio,
		CarModel:       validate.SanitizeInput(in.CarModel, 0),
		CarColor:       validate.SanitizeInput(in.CarColor, 0),
		CarYear:        validate.SanitizeInput(in.CarYear, 0),
		CarLicense:     validate.SanitizeInput(in.CarLicense, 0),
		CarCapacity:    int(in.CarCapacity),
		ProfilePicture: in.ProfilePicture,
	}
	if err := s.profiles.Upsert(ctx, &p); err != nil {
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("profile saved", "user", userID, "has_car", in.HasCar)
	return &p, nil
}
