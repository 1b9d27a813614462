package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/application/services"
	uploadApp "portfolio-api/internal/application/upload"
	"portfolio-api/internal/domain/profile"
	"portfolio-api/internal/domain/upload"
	"portfolio-api/internal/interface/api/rest/validator"
)

// 10MB
const maxUploadSize = int64(10 << 20)

type ProfileController struct {
	profileService ports.ProfileService
	logger         *zap.Logger
}

// NewProfileController registers public reads on r and edits on admin.
func NewProfileController(
	r gin.IRouter,
	admin gin.IRouter,
	profileService ports.ProfileService,
	logger *zap.Logger,
) *ProfileController {
	pc := &ProfileController{
		profileService: profileService,
		logger:         logger,
	}

	r.GET(RouteProfile, pc.GetProfileHandler)
	admin.PUT(RouteAvatar, pc.UpdateAvatarHandler)
	admin.DELETE(RouteAvatar, pc.DeleteAvatarHandler)
	admin.PUT(RouteSkillPhoto, pc.UpdateSkillPhotoHandler)
	admin.DELETE(RouteSkill, pc.DeleteSkillHandler)

	return pc
}

func (pc *ProfileController) GetProfileHandler(c *gin.Context) {
	p, err := pc.profileService.GetProfile(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get the profile"},
		)
		pc.logger.Error("GetProfile() error", zap.Error(err))
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (pc *ProfileController) UpdateAvatarHandler(c *gin.Context) {
	filename, content, ok := readUpload(c)
	if !ok {
		return
	}

	img, err := pc.profileService.UpdateAvatar(c.Request.Context(), filename, content)
	if err != nil {
		pc.uploadError(c, "UpdateAvatar()", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": img})
}

func (pc *ProfileController) DeleteAvatarHandler(c *gin.Context) {
	if err := pc.profileService.DeleteAvatar(c.Request.Context()); err != nil {
		pc.uploadError(c, "DeleteAvatar()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *ProfileController) UpdateSkillPhotoHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("skill_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skill_id must be a positive integer"})
		return
	}
	filename, content, ok := readUpload(c)
	if !ok {
		return
	}

	img, err := pc.profileService.UpdateSkillPhoto(c.Request.Context(), profile.SkillID(id), filename, content)
	if err != nil {
		pc.uploadError(c, "UpdateSkillPhoto()", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo": img})
}

func (pc *ProfileController) DeleteSkillHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("skill_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skill_id must be a positive integer"})
		return
	}

	if err = pc.profileService.DeleteSkill(c.Request.Context(), profile.SkillID(id)); err != nil {
		pc.uploadError(c, "DeleteSkill()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *ProfileController) uploadError(c *gin.Context, op string, err error) {
	var (
		storageErr *uploadApp.StorageWriteError
		recordErr  *uploadApp.RecordPersistError
	)

	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	case errors.Is(err, services.ErrSkillNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "skill not found"})
	case errors.Is(err, upload.ErrUnprocessable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "file is not a supported image"})
	case errors.Is(err, upload.ErrDuplicateRecord):
		c.JSON(http.StatusConflict, gin.H{"error": "an upload with this name already exists"})
	case errors.As(err, &storageErr):
		pc.logger.Error(op+" storage error",
			zap.String("variant", string(storageErr.Variant)),
			zap.String("path", storageErr.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store the file"})
	case errors.As(err, &recordErr):
		pc.logger.Error(op+" record error", zap.String("normal_path", recordErr.NormalPath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record the upload"})
	default:
		pc.logger.Error(op+" error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update the profile"})
	}
}

// readUpload reads the multipart "file" field and writes the error response
// itself when it returns false.
func readUpload(c *gin.Context) (string, []byte, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return "", nil, false
	}
	if fh.Size <= 0 || fh.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return "", nil, false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return "", nil, false
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return "", nil, false
	}

	return fh.Filename, content, true
}
