package handler

import (
	"net/http"
	"strconv"

	"new-recruitment-api/internal/delivery/http/response"
	"new-recruitment-api/internal/domain"
	"new-recruitment-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/job-offer/:job_offer_id", handler.ListByJobOffer)
		candidates.POST("", handler.Create)
	}
}

type CreateCandidateRequest struct {
	Name              string  `json:"name"`
	Surname           string  `json:"surname"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Notes             string  `json:"notes"`
	YearsOfExperience int     `json:"years_of_experience"`
	JobOffers         []int64 `json:"job_offers"`
}

// List godoc
// @Summary      List candidates
// @Description  Get one page of candidates with pagination metadata
// @Tags         candidates
// @Produce      json
// @Param        page  query     int  false  "Page number (defaults to 1)"
// @Success      200   {object}  domain.CandidatePage
// @Failure      500   {object}  response.Body
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	page := parsePage(c)

	result, err := h.candidateUC.List(c, page)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListByJobOffer godoc
// @Summary      List candidates by job offer
// @Description  Get one page of candidates linked to the given job offer
// @Tags         candidates
// @Produce      json
// @Param        job_offer_id  path      int  true   "Job offer ID"
// @Param        page          query     int  false  "Page number (defaults to 1)"
// @Success      200           {object}  domain.CandidatePage
// @Failure      400           {object}  response.Body
// @Failure      500           {object}  response.Body
// @Router       /candidates/job-offer/{job_offer_id} [get]
func (h *CandidateHandler) ListByJobOffer(c *gin.Context) {
	jobOfferID, err := strconv.ParseInt(c.Param("job_offer_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job offer ID"))
		return
	}

	page := parsePage(c)

	result, err := h.candidateUC.ListByJobOffer(c, jobOfferID, page)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Create godoc
// @Summary      Create a candidate
// @Description  Validate the request, store the candidate and its job offer links, and mirror it to the legacy API
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CreateCandidateRequest  true  "Candidate JSON"
// @Success      201        {object}  response.Body
// @Failure      400        {object}  response.Body
// @Failure      422        {object}  response.Body
// @Failure      500        {object}  response.Body
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	candidate := &domain.Candidate{
		Name:              req.Name,
		Surname:           req.Surname,
		Email:             req.Email,
		Phone:             req.Phone,
		Notes:             req.Notes,
		YearsOfExperience: req.YearsOfExperience,
		RecruitmentStatus: domain.StatusNew,
		JobOffers:         req.JobOffers,
	}

	if err := h.candidateUC.Create(c, candidate); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusCreated, "Candidate created successfully")
}

// parsePage treats absent, malformed, and non-positive page values as page 1.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
