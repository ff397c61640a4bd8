package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"concord/auth"
	"concord/domain"
	"concord/errors"
	"concord/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSecret = []byte("handlers_test_secret_key_value")

func newTestApp(t *testing.T) (*fiber.App, *mocks.MockIMessageService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIMessageService(ctrl)
	app := fiber.New()
	app.Use(auth.Middleware(testSecret))
	NewMessageHandler(svc, slog.Default()).Register(app)
	return app, svc
}

func authedRequest(t *testing.T, method, target, body, profileID string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	token, err := auth.GenerateToken(testSecret, profileID, "Tester", time.Hour)
	require.NoError(t, err)
	request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return request
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func Test_Requests_Without_Identity_Are_Rejected(t *testing.T) {
	req := require.New(t)
	app, svc := newTestApp(t)
	svc.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Times(0)

	request := httptest.NewRequest(http.MethodPost, "/servers/s1/channels/c1/messages", strings.NewReader(`{"content":"hi"}`))
	request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(request)
	req.NoError(err)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func Test_Create_Channel_Message(t *testing.T) {
	req := require.New(t)
	app, svc := newTestApp(t)
	scope := domain.ChannelScope("s1", "c1")

	svc.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, cmd domain.CreateMessageCommand) (domain.Message, error) {
			req.Equal(scope, cmd.Scope)
			req.Equal("profile-1", cmd.ProfileID)
			req.Equal("hi", cmd.Content)
			return domain.NewMessage(scope, domain.Member{ID: "m1", ProfileID: "profile-1"}, "hi", nil, time.Now().UTC()), nil
		})

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/servers/s1/channels/c1/messages", `{"content":"hi"}`, "profile-1"))
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Message domain.Message `json:"message"`
	}
	req.NoError(json.NewDecoder(resp.Body).Decode(&body))
	req.Equal("hi", body.Message.Content)
	req.False(body.Message.Deleted)
}

func Test_Error_Kinds_Map_To_Statuses(t *testing.T) {
	messageID := uuid.NewString()
	tests := []struct {
		name       string
		serviceErr error
		status     int
		kind       string
	}{
		{"scope not found", errors.ErrScopeNotFound, http.StatusNotFound, "scope_not_found"},
		{"message not found", errors.ErrMessageNotFound, http.StatusNotFound, "message_not_found"},
		{"unauthorized", errors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"storage failure", errors.ErrStorage, http.StatusInternalServerError, "storage_failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			app, svc := newTestApp(t)
			svc.EXPECT().EditMessage(gomock.Any(), gomock.Any()).Return(domain.Message{}, tt.serviceErr)

			resp, err := app.Test(authedRequest(t, http.MethodPatch,
				"/servers/s1/channels/c1/messages/"+messageID, `{"content":"edited"}`, "profile-1"))
			req.NoError(err)
			req.Equal(tt.status, resp.StatusCode)
			req.Equal(tt.kind, decodeError(t, resp))
		})
	}
}

func Test_Double_Delete_Conflicts(t *testing.T) {
	req := require.New(t)
	app, svc := newTestApp(t)
	svc.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Return(domain.Message{}, errors.ErrInvalidState)

	resp, err := app.Test(authedRequest(t, http.MethodDelete,
		"/conversations/conv-1/messages/"+uuid.NewString(), "", "profile-1"))
	req.NoError(err)
	req.Equal(http.StatusConflict, resp.StatusCode)
	req.Equal("invalid_state", decodeError(t, resp))
}

func Test_Malformed_Message_Id_Fails_Before_The_Service(t *testing.T) {
	req := require.New(t)
	app, svc := newTestApp(t)
	svc.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Times(0)

	resp, err := app.Test(authedRequest(t, http.MethodDelete,
		"/servers/s1/channels/c1/messages/not-a-uuid", "", "profile-1"))
	req.NoError(err)
	req.Equal(http.StatusBadRequest, resp.StatusCode)
	req.Equal("bad_request", decodeError(t, resp))
}

func Test_List_Messages_Forwards_Cursor(t *testing.T) {
	req := require.New(t)
	app, svc := newTestApp(t)
	next := "older"

	svc.EXPECT().
		ListMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, cmd domain.ListMessagesCommand) ([]domain.Message, *string, error) {
			req.NotNil(cmd.Cursor)
			req.Equal("abc", *cmd.Cursor)
			return nil, &next, nil
		})

	resp, err := app.Test(authedRequest(t, http.MethodGet,
		"/conversations/conv-1/messages?cursor=abc", "", "profile-1"))
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
}
