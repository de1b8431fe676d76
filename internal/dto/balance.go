package dto

import (
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// CategoryBalanceResponse is one entitlement/usage pair.
type CategoryBalanceResponse struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// BalanceResponse defines the data returned for one ledger year.
type BalanceResponse struct {
	UserID      string                  `json:"userID"`
	Year        int                     `json:"year"`
	Sick        CategoryBalanceResponse `json:"sickLeave"`
	Personal    CategoryBalanceResponse `json:"personalLeave"`
	Maternity   CategoryBalanceResponse `json:"maternityLeave"`
	Study       CategoryBalanceResponse `json:"studyLeave"`
	Bereavement CategoryBalanceResponse `json:"bereavementLeave"`
}

func toCategoryBalanceResponse(c domain.CategoryBalance) CategoryBalanceResponse {
	return CategoryBalanceResponse{
		Total:     c.Total,
		Used:      c.Used,
		Remaining: c.Remaining(),
	}
}

// ToBalanceResponse converts a domain.LeaveBalance to BalanceResponse DTO.
func ToBalanceResponse(b *domain.LeaveBalance) BalanceResponse {
	return BalanceResponse{
		UserID:      b.UserID,
		Year:        b.Year,
		Sick:        toCategoryBalanceResponse(b.Sick),
		Personal:    toCategoryBalanceResponse(b.Personal),
		Maternity:   toCategoryBalanceResponse(b.Maternity),
		Study:       toCategoryBalanceResponse(b.Study),
		Bereavement: toCategoryBalanceResponse(b.Bereavement),
	}
}

// BalanceParams defines query parameters for the balance endpoint.
type BalanceParams struct {
	Year int `form:"year"`
}
