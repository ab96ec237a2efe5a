package lawyer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/infra/repository"
)

func registration() CreateLawyerInput {
	return CreateLawyerInput{
		Name:      "Dra. Ana Costa",
		OabNumber: "SP123456",
		Email:     "Ana@Escritorio.adv.br",
		Phone:     "+55 11 98888-7777",
		Password:  "s3nh4-f0rte",
		Address:   "Av. Paulista, 1000",
		Slug:      "ana-costa",
	}
}

func TestCreateLawyer(t *testing.T) {
	repo := repository.NewLawyerMemoryRepository()
	uc := NewCreateLawyer(repo)

	lw, err := uc.Execute(context.Background(), registration())
	require.NoError(t, err)

	assert.NotZero(t, lw.ID)
	// Email is normalized before storage.
	assert.Equal(t, "ana@escritorio.adv.br", lw.Email)
	// The entity only ever carries the derived hash.
	assert.NotEqual(t, "s3nh4-f0rte", lw.HashedPassword)
	assert.True(t, strings.HasPrefix(lw.HashedPassword, "pbkdf2_sha512$"))
}

func TestCreateLawyerDerivesSlugFromName(t *testing.T) {
	repo := repository.NewLawyerMemoryRepository()
	uc := NewCreateLawyer(repo)

	in := registration()
	in.Slug = ""

	lw, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "dra-ana-costa", lw.Slug)
}

func TestCreateLawyerAccumulatesUniquenessViolations(t *testing.T) {
	repo := repository.NewLawyerMemoryRepository()
	uc := NewCreateLawyer(repo)

	_, err := uc.Execute(context.Background(), registration())
	require.NoError(t, err)

	// Same email, OAB number and slug: all three reported at once.
	_, err = uc.Execute(context.Background(), registration())
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "email")
	assert.Contains(t, ve.Report, "oabNumber")
	assert.Contains(t, ve.Report, "slug")
}

func TestCreateLawyerReportsSingleDuplicate(t *testing.T) {
	repo := repository.NewLawyerMemoryRepository()
	uc := NewCreateLawyer(repo)

	_, err := uc.Execute(context.Background(), registration())
	require.NoError(t, err)

	in := registration()
	in.Email = "outra@escritorio.adv.br"
	in.Slug = "outra-advogada"

	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "oabNumber")
	assert.NotContains(t, ve.Report, "email")
	assert.NotContains(t, ve.Report, "slug")
}

func TestCreateLawyerValidatesProfile(t *testing.T) {
	repo := repository.NewLawyerMemoryRepository()
	uc := NewCreateLawyer(repo)

	in := registration()
	in.Name = "Dr"
	in.Phone = "123"

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "name")
	assert.Contains(t, ve.Report, "phone")
}

func TestAuthenticateLawyer(t *testing.T) {
	repo := repository.NewLawyerMemoryRepository()
	createUC := NewCreateLawyer(repo)
	uc := NewAuthenticateLawyer(repo)

	_, err := createUC.Execute(context.Background(), registration())
	require.NoError(t, err)

	lw, err := uc.Execute(context.Background(), AuthenticateLawyerInput{
		Email:    "ana@escritorio.adv.br",
		Password: "s3nh4-f0rte",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana-costa", lw.Slug)
}

func TestAuthenticateLawyerGenericFailure(t *testing.T) {
	repo := repository.NewLawyerMemoryRepository()
	createUC := NewCreateLawyer(repo)
	uc := NewAuthenticateLawyer(repo)

	_, err := createUC.Execute(context.Background(), registration())
	require.NoError(t, err)

	// Unknown email and wrong password fail identically.
	_, badEmail := uc.Execute(context.Background(), AuthenticateLawyerInput{
		Email:    "desconhecida@example.com",
		Password: "s3nh4-f0rte",
	})
	_, badPassword := uc.Execute(context.Background(), AuthenticateLawyerInput{
		Email:    "ana@escritorio.adv.br",
		Password: "errada",
	})

	var ve1, ve2 *shared.ValidationError
	require.ErrorAs(t, badEmail, &ve1)
	require.ErrorAs(t, badPassword, &ve2)
	assert.Equal(t, ve1.Report, ve2.Report)
	assert.Contains(t, ve1.Report, "credentials")
}

func TestAuthenticateLawyerRequiresFields(t *testing.T) {
	uc := NewAuthenticateLawyer(repository.NewLawyerMemoryRepository())

	_, err := uc.Execute(context.Background(), AuthenticateLawyerInput{})
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "email")
	assert.Contains(t, ve.Report, "password")
}
