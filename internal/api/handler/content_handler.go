package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ulysse/cms-api/internal/core/ports"
)

// ContentHandler serves the public catalog and the admin create endpoints.
type ContentHandler struct {
	content ports.ContentService
}

func NewContentHandler(content ports.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

type createServiceRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

type createInsightRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
	ReadTime string `json:"readTime"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

// ListServices godoc
//
// @Summary  List services
// @Tags     content
// @Produce  json
// @Success  200  {array}  domain.Service
// @Router   /services [get]
func (h *ContentHandler) ListServices(c echo.Context) error {
	services, err := h.content.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// GetService godoc
//
// @Summary  Get a service
// @Tags     content
// @Produce  json
// @Param    id   path      string  true  "Service ID"
// @Success  200  {object}  domain.Service
// @Failure  404  {object}  map[string]string
// @Router   /services/{id} [get]
func (h *ContentHandler) GetService(c echo.Context) error {
	s, err := h.content.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// CreateService godoc
//
// @Summary   Create a service
// @Tags      content
// @Accept    json
// @Produce   json
// @Security  AccessToken
// @Param     body  body      createServiceRequest  true  "Service"
// @Success   201   {object}  domain.Service
// @Failure   400   {object}  map[string]string
// @Failure   401   {object}  map[string]string
// @Failure   403   {object}  map[string]string
// @Router    /services [post]
func (h *ContentHandler) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s, err := h.content.CreateService(c.Request().Context(), ports.CreateServiceInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s)
}

// ListInsights godoc
//
// @Summary  List insights
// @Tags     content
// @Produce  json
// @Success  200  {array}  domain.Insight
// @Router   /insights [get]
func (h *ContentHandler) ListInsights(c echo.Context) error {
	insights, err := h.content.ListInsights(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insights)
}

// GetInsight godoc
//
// @Summary  Get an insight
// @Tags     content
// @Produce  json
// @Param    id   path      string  true  "Insight ID"
// @Success  200  {object}  domain.Insight
// @Failure  404  {object}  map[string]string
// @Router   /insights/{id} [get]
func (h *ContentHandler) GetInsight(c echo.Context) error {
	in, err := h.content.GetInsight(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, in)
}

// InsightsByCategory godoc
//
// @Summary  List insights in a category
// @Tags     content
// @Produce  json
// @Param    category  path   string  true  "Exact category name"
// @Success  200       {array}  domain.Insight
// @Router   /insights/category/{category} [get]
func (h *ContentHandler) InsightsByCategory(c echo.Context) error {
	insights, err := h.content.InsightsByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insights)
}

// CreateInsight godoc
//
// @Summary   Publish an insight
// @Tags      content
// @Accept    json
// @Produce   json
// @Security  AccessToken
// @Param     body  body      createInsightRequest  true  "Insight"
// @Success   201   {object}  domain.Insight
// @Failure   400   {object}  map[string]string
// @Failure   401   {object}  map[string]string
// @Failure   403   {object}  map[string]string
// @Router    /insights [post]
func (h *ContentHandler) CreateInsight(c echo.Context) error {
	var req createInsightRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in, err := h.content.CreateInsight(c.Request().Context(), ports.CreateInsightInput{
		Title:    req.Title,
		Category: req.Category,
		ReadTime: req.ReadTime,
		Excerpt:  req.Excerpt,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, in)
}

// ListCaseStudies godoc
//
// @Summary  List case studies
// @Tags     content
// @Produce  json
// @Success  200  {array}  domain.CaseStudy
// @Router   /case-studies [get]
func (h *ContentHandler) ListCaseStudies(c echo.Context) error {
	cases, err := h.content.ListCaseStudies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// GetCaseStudy godoc
//
// @Summary  Get a case study
// @Tags     content
// @Produce  json
// @Param    id   path      string  true  "Case study ID"
// @Success  200  {object}  domain.CaseStudy
// @Failure  404  {object}  map[string]string
// @Router   /case-studies/{id} [get]
func (h *ContentHandler) GetCaseStudy(c echo.Context) error {
	cs, err := h.content.GetCaseStudy(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cs)
}

// ListTeam godoc
//
// @Summary  List team members
// @Tags     content
// @Produce  json
// @Success  200  {array}  domain.TeamMember
// @Router   /team [get]
func (h *ContentHandler) ListTeam(c echo.Context) error {
	team, err := h.content.ListTeam(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// GetTeamMember godoc
//
// @Summary  Get a team member
// @Tags     content
// @Produce  json
// @Param    id   path      string  true  "Team member ID"
// @Success  200  {object}  domain.TeamMember
// @Failure  404  {object}  map[string]string
// @Router   /team/{id} [get]
func (h *ContentHandler) GetTeamMember(c echo.Context) error {
	m, err := h.content.GetTeamMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// ContentByType godoc
//
// @Summary  CMS content by type
// @Tags     cms
// @Produce  json
// @Param    type  path  string  true  "services, insights, case-studies or team"
// @Success  200   {array}   object
// @Failure  404   {object}  map[string]string
// @Router   /cms/content/{type} [get]
func (h *ContentHandler) ContentByType(c echo.Context) error {
	content, err := h.content.ContentByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}
