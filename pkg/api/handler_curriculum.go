package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/lecternhq/lectern/pkg/events"
	"github.com/lecternhq/lectern/pkg/models"
)

// listCurriculaHandler handles GET /api/v1/curricula.
func (s *Server) listCurriculaHandler(c *echo.Context) error {
	req := models.ListCurriculaRequest{
		UserID: userID(c),
		Page:   1,
		Limit:  10,
	}

	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			req.Page = p
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			req.Limit = l
		}
	}
	req.Search = c.QueryParam("search")
	req.Type = c.QueryParam("type")
	req.TargetAudience = c.QueryParam("target_audience")
	req.SortBy = c.QueryParam("sort_by")
	req.SortOrder = c.QueryParam("sort_order")

	result, err := s.curriculums.List(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// createCurriculumHandler handles POST /api/v1/curricula.
func (s *Server) createCurriculumHandler(c *echo.Context) error {
	var req models.CreateCurriculumRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	req.UserID = userID(c)

	curriculum, err := s.curriculums.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, curriculum)
}

// getCurriculumHandler handles GET /api/v1/curricula/:id.
func (s *Server) getCurriculumHandler(c *echo.Context) error {
	curriculum, err := s.curriculums.Get(c.Request().Context(), userID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, curriculum)
}

// getSharedCurriculumHandler handles GET /api/v1/shared/:id.
// Public read of a curriculum whose owner enabled sharing; no auth.
func (s *Server) getSharedCurriculumHandler(c *echo.Context) error {
	curriculum, err := s.curriculums.GetShared(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, curriculum)
}

// updateCurriculumHandler handles PUT /api/v1/curricula/:id.
func (s *Server) updateCurriculumHandler(c *echo.Context) error {
	var req models.UpdateCurriculumRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	curriculum, err := s.curriculums.Update(c.Request().Context(), userID(c), c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, curriculum)
}

// deleteCurriculumHandler handles DELETE /api/v1/curricula/:id.
// Versions and chat history cascade. Collaborators viewing the curriculum
// are notified through the hub.
func (s *Server) deleteCurriculumHandler(c *echo.Context) error {
	id := c.Param("id")
	if err := s.curriculums.Delete(c.Request().Context(), userID(c), id); err != nil {
		return mapServiceError(err)
	}

	if s.hub != nil {
		s.hub.SendToCurriculum(id, events.EventCurriculumDeleted, map[string]string{
			"curriculumId": id,
		})
	}
	return c.JSON(http.StatusOK, &DeleteCurriculumResponse{
		CurriculumID: id,
		Message:      "curriculum deleted",
	})
}

// duplicateCurriculumHandler handles POST /api/v1/curricula/:id/duplicate.
func (s *Server) duplicateCurriculumHandler(c *echo.Context) error {
	curriculum, err := s.curriculums.Duplicate(c.Request().Context(), userID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, curriculum)
}

// listVersionsHandler handles GET /api/v1/curricula/:id/versions.
func (s *Server) listVersionsHandler(c *echo.Context) error {
	versions, err := s.curriculums.ListVersions(c.Request().Context(), userID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, versions)
}

// restoreVersionHandler handles POST /api/v1/curricula/:id/versions/:number/restore.
func (s *Server) restoreVersionHandler(c *echo.Context) error {
	id := c.Param("id")
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		return badRequest("version number must be a positive integer")
	}

	result, err := s.curriculums.RestoreVersion(c.Request().Context(), userID(c), id, number)
	if err != nil {
		return mapServiceError(err)
	}

	if s.hub != nil {
		s.hub.SendToCurriculum(id, events.EventVersionRestored, map[string]interface{}{
			"curriculumId":        id,
			"currentVersion":      result.CurrentVersion,
			"restoredFromVersion": result.RestoredFromVersion,
		})
	}
	return c.JSON(http.StatusOK, result)
}

// chatHistoryHandler handles GET /api/v1/curricula/:id/chat.
func (s *Server) chatHistoryHandler(c *echo.Context) error {
	messages, err := s.chatHistory.History(c.Request().Context(), userID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

// addChatMessageHandler handles POST /api/v1/curricula/:id/chat.
func (s *Server) addChatMessageHandler(c *echo.Context) error {
	var req models.AddChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	req.CurriculumID = c.Param("id")

	msg, err := s.chatHistory.SaveMessage(c.Request().Context(), userID(c), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

// clearChatHandler handles DELETE /api/v1/curricula/:id/chat.
func (s *Server) clearChatHandler(c *echo.Context) error {
	id := c.Param("id")
	deleted, err := s.chatHistory.Clear(c.Request().Context(), userID(c), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ClearChatResponse{
		CurriculumID: id,
		Deleted:      deleted,
	})
}
