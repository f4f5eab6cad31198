package services

import (
	"testing"

	"snakescores/models"

	"github.com/stretchr/testify/suite"
)

type AdminServiceSuite struct {
	suite.Suite
	service *AdminService
}

func TestAdminServiceSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceSuite))
}

func (s *AdminServiceSuite) SetupTest() {
	s.service = NewAdminService(setupTestDB(s.T()))
}

func (s *AdminServiceSuite) createAdmin(uid string) *models.AdminUser {
	admin, err := models.NewAdminUser("Administrator", uid, "passsword")
	s.Require().NoError(err)
	s.Require().NoError(s.service.Create(admin))
	return admin
}

func (s *AdminServiceSuite) TestCreateAndLookup() {
	admin := s.createAdmin("admin")

	got, err := s.service.Get(admin.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("admin", got.UID)

	byUID, err := s.service.GetByUID("admin")
	s.Require().NoError(err)
	s.Require().NotNil(byUID)

	absent, err := s.service.GetByUID("nobody")
	s.Require().NoError(err)
	s.Nil(absent)
}

func (s *AdminServiceSuite) TestDuplicateHandleRejected() {
	s.createAdmin("admin")

	dup, err := models.NewAdminUser("Other", "admin", "pw")
	s.Require().NoError(err)
	s.Require().ErrorIs(s.service.Create(dup), ErrDuplicate)

	admins, err := s.service.List()
	s.Require().NoError(err)
	s.Len(admins, 1)
}

func (s *AdminServiceSuite) TestUpdateSkipsEmptyFields() {
	admin := s.createAdmin("admin")
	originalHash := admin.PasswordHash

	updated, err := s.service.Update(admin.ID, &UpdateAdminRequest{Name: "Root"})
	s.Require().NoError(err)
	s.Equal("Root", updated.Name)
	s.Equal("admin", updated.UID)
	s.Equal(originalHash, updated.PasswordHash)

	updated, err = s.service.Update(admin.ID, &UpdateAdminRequest{Password: "rotated"})
	s.Require().NoError(err)
	s.True(s.service.CheckPassword(updated, "rotated"))
	s.False(s.service.CheckPassword(updated, "passsword"))
}

func (s *AdminServiceSuite) TestDelete() {
	admin := s.createAdmin("admin")
	s.Require().NoError(s.service.Delete(admin.ID))

	got, err := s.service.Get(admin.ID)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *AdminServiceSuite) TestDeletedHandleCanBeReused() {
	first := s.createAdmin("admin")
	s.Require().NoError(s.service.Delete(first.ID))

	second, err := models.NewAdminUser("Administrator II", "admin", "pw")
	s.Require().NoError(err)
	s.Require().NoError(s.service.Create(second))

	got, err := s.service.GetByUID("admin")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Administrator II", got.Name)
}

func (s *AdminServiceSuite) TestCheckPassword() {
	admin := s.createAdmin("admin")

	s.True(s.service.CheckPassword(admin, "passsword"))
	s.False(s.service.CheckPassword(admin, "wrong"))
	s.False(s.service.CheckPassword(nil, "anything"))
}

func (s *AdminServiceSuite) TestViewOmitsPassword() {
	admin := s.createAdmin("admin")
	view := admin.View()
	s.Equal("admin", view.UID)
	s.Equal(admin.ID, view.ID)
}
