package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/speed-edit-api/internal/application/dto"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/speed-edit-api/pkg/jwt"
)

func TestLogin_DevuelveToken(t *testing.T) {
	s := newTestServer(t, fakeReport{})
	resp := s.doJSON(t, http.MethodPost, "/api/auth/login", `{"email":"admin@tienda.co","password":"secreto123"}`, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.LoginResponse](t, resp)
	userID, role, err := pkgjwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	s := newTestServer(t, fakeReport{})

	resp := s.doJSON(t, http.MethodPost, "/api/auth/login", `{"email":"admin@tienda.co","password":"otra-clave"}`, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := s.doJSON(t, http.MethodPost, "/api/auth/login", `{"email":""}`, "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestRegister_SoloAdmin(t *testing.T) {
	s := newTestServer(t, fakeReport{})
	body := `{"email":"bodega@tienda.co","password":"secreto123","role":"bodeguero"}`

	resp := s.doJSON(t, http.MethodPost, "/api/auth/register", body, tokenForRole(t, entity.RoleBodeguero))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp2 := s.doJSON(t, http.MethodPost, "/api/auth/register", body, "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)

	resp3 := s.doJSON(t, http.MethodPost, "/api/auth/register", body, tokenForRole(t, entity.RoleAdmin))
	defer resp3.Body.Close()
	require.Equal(t, http.StatusCreated, resp3.StatusCode)
	out := decode[dto.UserResponse](t, resp3)
	assert.Equal(t, entity.RoleBodeguero, out.Role)

	dup := s.doJSON(t, http.MethodPost, "/api/auth/register", body, tokenForRole(t, entity.RoleAdmin))
	defer dup.Body.Close()
	assert.Equal(t, http.StatusConflict, dup.StatusCode)
}
