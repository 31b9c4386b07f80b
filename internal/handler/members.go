package handler

import (
	"net/http"

	"club-portal/internal/dispatch"
	"club-portal/internal/logger"
	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	d    *dispatch.Dispatcher
	snap *store.Snapshot
}

func NewMemberHandler(d *dispatch.Dispatcher, snap *store.Snapshot) *MemberHandler {
	return &MemberHandler{d: d, snap: snap}
}

// POST /api/members — the public membership application form. New members
// always enter as pending; only an admin decision activates or rejects them.
func (h *MemberHandler) Apply(c *gin.Context) {
	var req model.MembershipApplication
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if fields := validateStruct(&req); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	m := &model.Member{
		FullName:          req.FullName,
		BirthDate:         req.BirthDate,
		NationalID:        req.NationalID,
		Nationality:       req.Nationality,
		City:              req.City,
		Gender:            req.Gender,
		Phone:             req.Phone,
		GuardianPhone:     req.GuardianPhone,
		EmergencyPhone:    req.EmergencyPhone,
		Address:           req.Address,
		Email:             req.Email,
		HasSiblings:       req.HasSiblings,
		SiblingsCount:     req.SiblingsCount,
		ChronicDiseases:   req.ChronicDiseases,
		Allergies:         req.Allergies,
		Injuries:          req.Injuries,
		Medications:       req.Medications,
		SpecialCare:       req.SpecialCare,
		RegistrationGoals: req.RegistrationGoals,
		DesiredActivities: req.DesiredActivities,
		OtherInterests:    req.OtherInterests,
		MembershipType:    req.MembershipType,
		EducationLevel:    req.EducationLevel,
		Hobbies:           req.Hobbies,
		Skills:            req.Skills,
		Photo:             req.Photo,
		MemberSignature:   req.MemberSignature,
		GuardianSignature: req.GuardianSignature,
		GuardianName:      req.GuardianName,
		Status:            model.MemberPending,
	}
	m = h.d.SaveMember(c.Request.Context(), m)
	logger.Info("member.applied", "id", m.ID, "number", m.MembershipNumber)
	c.JSON(http.StatusOK, m)
}

// GET /api/members
func (h *MemberHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.snap.Members())
}

// POST /api/members/save — admin edit of a full member record.
func (h *MemberHandler) Save(c *gin.Context) {
	var m model.Member
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, h.d.SaveMember(c.Request.Context(), &m))
}

// PATCH /api/members/:id/status — the approval workflow transition.
func (h *MemberHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	switch req.Status {
	case model.MemberActive, model.MemberRejected, model.MemberPending:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	id := c.Param("id")
	for _, m := range h.snap.Members() {
		if m.ID == id {
			cp := *m
			cp.Status = req.Status
			c.JSON(http.StatusOK, h.d.SaveMember(c.Request.Context(), &cp))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
}

// DELETE /api/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	h.d.RemoveMember(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
