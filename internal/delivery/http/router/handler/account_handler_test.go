package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/internal/delivery/http/validator"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase returns canned results so handler behavior can be
// tested without the service stack.
type stubAccountUsecase struct {
	usecase.AccountUsecase

	registerOut *usecase.TokenOutput
	registerErr error
	loginOut    *usecase.TokenOutput
	loginErr    error
	getOut      *entity.Account
	getErr      error
}

func (s *stubAccountUsecase) Register(context.Context, *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	return s.registerOut, s.registerErr
}

func (s *stubAccountUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.TokenOutput, error) {
	return s.loginOut, s.loginErr
}

func (s *stubAccountUsecase) Get(context.Context, uuid.UUID) (*entity.Account, error) {
	return s.getOut, s.getErr
}

func newHandlerContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_RegisterReturnsToken(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{
		registerOut: &usecase.TokenOutput{Token: "issued-token"},
	}, slog.Default())

	c, rec := newHandlerContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"Passw0rd"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "issued-token")
}

func TestAccountHandler_RegisterPropagatesClassifiedError(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{
		registerErr: domainerrors.ErrEmailAlreadyUsed,
	}, slog.Default())

	c, _ := newHandlerContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"Passw0rd"}`)

	err := handler.Register(c)
	require.Error(t, err)

	// The error reaches Echo's error handler with its classification intact.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "EMAIL_ALREADY_USED", appErr.ErrorCode())
}

func TestAccountHandler_RegisterRejectsEmptyBody(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{}, slog.Default())

	// An empty POST body decodes to nothing; the request must fail shape
	// validation with a 400 instead of reaching the service.
	c, rec := newHandlerContext(t, http.MethodPost, "/auth/register", "")

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAccountHandler_RegisterRejectsMissingFields(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{}, slog.Default())

	c, rec := newHandlerContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_LoginRejectsEmptyBody(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{}, slog.Default())

	c, rec := newHandlerContext(t, http.MethodPost, "/auth/login", "")

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAccountHandler_LoginReturnsToken(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{
		loginOut: &usecase.TokenOutput{Token: "fresh-token"},
	}, slog.Default())

	c, rec := newHandlerContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"Passw0rd"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh-token")
}

func TestAccountHandler_LoginPropagatesInvalidCredentials(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{
		loginErr: domainerrors.ErrInvalidCredentials,
	}, slog.Default())

	c, _ := newHandlerContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	err := handler.Login(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAccountHandler_GetReturnsAccountByID(t *testing.T) {
	accountID := uuid.New()
	handler := NewAccountHandler(&stubAccountUsecase{
		getOut: &entity.Account{
			ID:    accountID,
			Name:  "Alice",
			Email: "alice@example.com",
			Roles: entity.Roles{entity.RoleUser},
		},
	}, slog.Default())

	c, rec := newHandlerContext(t, http.MethodGet, "/accounts/"+accountID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	// The stored digest never appears in the payload.
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestAccountHandler_GetRejectsMalformedID(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{}, slog.Default())

	c, rec := newHandlerContext(t, http.MethodGet, "/accounts/oops", "")
	c.SetParamNames("id")
	c.SetParamValues("oops")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_UpdateRejectsMalformedID(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{}, slog.Default())

	c, rec := newHandlerContext(t, http.MethodPut, "/accounts/not-a-uuid", `{"name":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_DeleteRejectsMalformedID(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{}, slog.Default())

	c, rec := newHandlerContext(t, http.MethodDelete, "/accounts/"+uuid.NewString(), "")
	c.SetParamNames("id")
	c.SetParamValues("???")

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
