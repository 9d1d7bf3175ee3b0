package handlers

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/interfaces/http/middleware"
	"justice-airdrop.backend/pkg/utils"
)

const defaultPageLimit = 20

func bindJSON(c *gin.Context, dst interface{}) bool {
	return c.ShouldBindJSON(dst) == nil
}

func currentUser(c *gin.Context) (*entities.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, domainerrors.Unauthorized("Missing user id header")
	}
	return user, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.BadRequest("Invalid " + name)
	}
	return uint(id), nil
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func paginationFromQuery(c *gin.Context) utils.PaginationParams {
	return utils.GetPaginationParams(queryInt(c, "page", 1), queryInt(c, "limit", 0), defaultPageLimit)
}

// formAttachment opens the optional multipart file; the returned close func
// is always safe to call.
func formAttachment(c *gin.Context, field string) (*entities.Attachment, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, nil
	}
	return openAttachment(header)
}

func openAttachment(header *multipart.FileHeader) (*entities.Attachment, func(), error) {
	f, err := header.Open()
	if err != nil {
		return nil, func() {}, domainerrors.BadRequest("Unreadable file")
	}
	return &entities.Attachment{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  f,
	}, func() { _ = f.Close() }, nil
}
