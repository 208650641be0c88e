package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"

	apperrors "raffle-manager-backend/internal/common/errors"
	"raffle-manager-backend/internal/common/middleware"
	"raffle-manager-backend/internal/features/raffle/models"
)

type ticketRow struct {
	Number        int    `csv:"number"`
	Status        string `csv:"status"`
	BuyerName     string `csv:"buyer_name"`
	BuyerPhone    string `csv:"buyer_phone"`
	PaymentMethod string `csv:"payment_method"`
	PurchaseDate  string `csv:"purchase_date"`
}

type winnerRow struct {
	Order         int    `csv:"order"`
	Prize         string `csv:"prize"`
	WinningNumber int    `csv:"winning_number"`
	WinnerName    string `csv:"winner_name"`
	WinnerPhone   string `csv:"winner_phone"`
	DrawnAt       string `csv:"drawn_at"`
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ticketRows lists sold and reserved tickets only.
func ticketRows(r *models.Raffle) []*ticketRow {
	rows := make([]*ticketRow, 0)
	for _, t := range r.Numbers {
		if t.IsAvailable() {
			continue
		}
		rows = append(rows, &ticketRow{
			Number:        t.ID,
			Status:        string(t.Status),
			BuyerName:     t.BuyerName,
			BuyerPhone:    t.BuyerPhone,
			PaymentMethod: string(t.PaymentMethod),
			PurchaseDate:  formatTime(t.PurchaseDate),
		})
	}
	return rows
}

func winnerRows(r *models.Raffle) []*winnerRow {
	winners := r.Winners()
	rows := make([]*winnerRow, 0, len(winners))
	for _, p := range winners {
		rows = append(rows, &winnerRow{
			Order:         p.Order,
			Prize:         p.Description,
			WinningNumber: *p.WinningNumber,
			WinnerName:    p.WinnerName,
			WinnerPhone:   p.WinnerPhone,
			DrawnAt:       formatTime(p.DrawnAt),
		})
	}
	return rows
}

func (h *RaffleHandler) sendCSV(c *gin.Context, name string, rows interface{}) {
	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to encode csv"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary Export sold tickets
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} middleware.ErrorResponse
// @Router /raffles/{id}/export/tickets [get]
func (h *RaffleHandler) exportTickets(c *gin.Context) {
	raffle, err := h.service.GetRaffleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	rows := ticketRows(raffle)
	h.sendCSV(c, fmt.Sprintf("raffle-%s-tickets.csv", raffle.ID), &rows)
}

// @Summary Export prize winners
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Security TelegramInitData
// @Param id path string true "Raffle ID"
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} middleware.ErrorResponse
// @Router /raffles/{id}/export/winners [get]
func (h *RaffleHandler) exportWinners(c *gin.Context) {
	raffle, err := h.service.GetRaffleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	rows := winnerRows(raffle)
	h.sendCSV(c, fmt.Sprintf("raffle-%s-winners.csv", raffle.ID), &rows)
}
