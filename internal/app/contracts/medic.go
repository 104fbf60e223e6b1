package contracts

import (
	"consultorio-service/internal/app/models"
	"consultorio-service/internal/pkg/dto/requests"
	"consultorio-service/internal/pkg/dto/responses"
	"context"
)

// SignUpResult is the subset of the remote auth provider's sign-up
// response the rest of the service cares about.
type SignUpResult struct {
	UserID string
	Email  string
}

type MedicSupabaseClient interface {
	SignUp(ctx context.Context, email, password string) (*SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (*SignUpResult, error)
	FindMedicByEmail(ctx context.Context, email string) (*models.Medic, error)
	UpdateMedicByEmail(ctx context.Context, email string, profile *models.MedicProfile) (int, error)
}

type MedicUsecase interface {
	SignUp(ctx context.Context, request *requests.SignUpMedic) (*responses.SignUpMedic, error)
	SignIn(ctx context.Context, request *requests.SignInMedic) (*responses.SignInMedic, error)
	GetMedicByEmail(ctx context.Context, email string) (*models.Medic, error)
	SaveMedicProfile(ctx context.Context, request *requests.SaveMedicProfile) error
	Logout(ctx context.Context, sessionID string) error
}
