package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-api/internal/application/services"
	uploadApp "portfolio-api/internal/application/upload"
	"portfolio-api/internal/domain/profile"
	"portfolio-api/internal/domain/upload"
	"portfolio-api/internal/interface/api/rest/dto/portfolio"
)

func TestProfileController_GetProfileHandler(t *testing.T) {
	tests := []struct {
		name     string
		get      func(ctx context.Context) (*portfolio.Profile, error)
		wantCode int
	}{
		{
			name: "ok",
			get: func(context.Context) (*portfolio.Profile, error) {
				return &portfolio.Profile{
					Name:   "Jane",
					Avatar: portfolio.NewImage("", "", "/media/avatars/normal/a.webp", ""),
				}, nil
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "no profile -> 404",
			get:      func(context.Context) (*portfolio.Profile, error) { return nil, nil },
			wantCode: http.StatusNotFound,
		},
		{
			name:     "service error -> 500",
			get:      func(context.Context) (*portfolio.Profile, error) { return nil, errors.New("db") },
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)
			NewProfileController(r, r, &FakeProfileService{GetProfileFunc: tt.get}, zap.NewNop())

			rr := doReq(t, r, http.MethodGet, RouteProfile, nil)
			require.Equal(t, tt.wantCode, rr.Code)

			if tt.wantCode == http.StatusOK {
				resp := decode(t, rr)
				avatar, ok := resp["avatar"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "/media/avatars/normal/a.webp", avatar["normal"])
				assert.Nil(t, avatar["original"])
			}
		})
	}
}

func TestProfileController_UpdateAvatarHandler(t *testing.T) {
	okImage := portfolio.NewImage("/o", "/i", "/n", "/l")

	tests := []struct {
		name     string
		filename string
		content  []byte
		update   func(ctx context.Context, filename string, content []byte) (*portfolio.Image, error)
		wantCode int
	}{
		{
			name:     "ok",
			filename: "me.png",
			content:  []byte("png-bytes"),
			update: func(_ context.Context, filename string, content []byte) (*portfolio.Image, error) {
				if filename != "me.png" || string(content) != "png-bytes" {
					return nil, errors.New("unexpected upload")
				}
				return okImage, nil
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing file -> 400",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty file -> 413",
			filename: "me.png",
			content:  []byte{},
			wantCode: http.StatusRequestEntityTooLarge,
		},
		{
			name:     "unprocessable -> 422",
			filename: "notes.txt",
			content:  []byte("text"),
			update: func(context.Context, string, []byte) (*portfolio.Image, error) {
				return nil, fmt.Errorf("generate: %w", upload.ErrUnprocessable)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "duplicate -> 409",
			filename: "me.png",
			content:  []byte("x"),
			update: func(context.Context, string, []byte) (*portfolio.Image, error) {
				return nil, fmt.Errorf("%w: avatars/normal/me.webp", upload.ErrDuplicateRecord)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:     "storage failure -> 500",
			filename: "me.png",
			content:  []byte("x"),
			update: func(context.Context, string, []byte) (*portfolio.Image, error) {
				return nil, &uploadApp.StorageWriteError{Variant: upload.VariantIcon, Path: "avatars/icon/me.webp", Err: errors.New("disk full")}
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "no profile -> 404",
			filename: "me.png",
			content:  []byte("x"),
			update: func(context.Context, string, []byte) (*portfolio.Image, error) {
				return nil, services.ErrProfileNotFound
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)
			NewProfileController(r, r, &FakeProfileService{UpdateAvatarFunc: tt.update}, zap.NewNop())

			rr := doMultipart(t, r, http.MethodPut, RouteAvatar, tt.filename, tt.content)
			require.Equal(t, tt.wantCode, rr.Code, rr.Body.String())
			if tt.wantCode == http.StatusOK {
				resp := decode(t, rr)
				assert.Contains(t, resp, "avatar")
			}
		})
	}
}

func TestProfileController_DeleteAvatarHandler(t *testing.T) {
	r := newTestRouter(t)
	NewProfileController(r, r, &FakeProfileService{
		DeleteAvatarFunc: func(context.Context) error { return nil },
	}, zap.NewNop())

	rr := doReq(t, r, http.MethodDelete, RouteAvatar, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestProfileController_UpdateSkillPhotoHandler(t *testing.T) {
	var gotID profile.SkillID
	ps := &FakeProfileService{
		UpdateSkillPhotoFunc: func(_ context.Context, id profile.SkillID, _ string, _ []byte) (*portfolio.Image, error) {
			gotID = id
			if id == 404 {
				return nil, services.ErrSkillNotFound
			}
			return portfolio.NewImage("", "", "/n", ""), nil
		},
	}

	r := newTestRouter(t)
	NewProfileController(r, r, ps, zap.NewNop())

	rr := doMultipart(t, r, http.MethodPut, "/api/v1/profile/skills/7/photo", "go.png", []byte("x"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, profile.SkillID(7), gotID)

	rr = doMultipart(t, r, http.MethodPut, "/api/v1/profile/skills/404/photo", "go.png", []byte("x"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doMultipart(t, r, http.MethodPut, "/api/v1/profile/skills/abc/photo", "go.png", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProfileController_DeleteSkillHandler(t *testing.T) {
	ps := &FakeProfileService{
		DeleteSkillFunc: func(_ context.Context, id profile.SkillID) error {
			if id == 2 {
				return nil
			}
			return services.ErrSkillNotFound
		},
	}

	r := newTestRouter(t)
	NewProfileController(r, r, ps, zap.NewNop())

	assert.Equal(t, http.StatusNoContent, doReq(t, r, http.MethodDelete, "/api/v1/profile/skills/2", nil).Code)
	assert.Equal(t, http.StatusNotFound, doReq(t, r, http.MethodDelete, "/api/v1/profile/skills/3", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doReq(t, r, http.MethodDelete, "/api/v1/profile/skills/0", nil).Code)
}
