package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unilease/unilease/api/auth"
	"github.com/unilease/unilease/api/models"
	"github.com/unilease/unilease/api/notice"
)

// paymentRecords is demo data. Payments are not backed by the database and
// there is no ledger entity behind this page.
var paymentRecords = []models.Payment{
	{ID: 1, Car: "Toyota Camry 2024", Amount: 299.99, Date: "2024-01-15", Status: "Paid"},
	{ID: 2, Car: "Honda Civic 2024", Amount: 279.99, Date: "2024-02-15", Status: "Paid"},
	{ID: 3, Car: "Ford Mustang 2024", Amount: 499.99, Date: "2024-03-15", Status: "Pending"},
}

// Payments renders the static payments list.
func (h *Handler) Payments(c *gin.Context) {
	c.HTML(http.StatusOK, "payments.html", gin.H{
		"User":     auth.CurrentUser(c),
		"Payments": paymentRecords,
		"Notices":  notice.Take(c),
	})
}
