package records

import (
	"encoding/json"
	"fmt"
	"time"

	"logiflow/internal/localstore"
)

type SaveActionRequest struct {
	ActionType string          `json:"action_type" validate:"required"`
	Details    json.RawMessage `json:"details"`
}

type SaveFormRequest struct {
	FormData json.RawMessage `json:"form_data" validate:"required"`
	Status   string          `json:"status"`
}

type SaveOrderRequest struct {
	OrderNumber string          `json:"order_number" validate:"required"`
	Status      string          `json:"status"       validate:"required"`
	Details     json.RawMessage `json:"details"`
}

// Owner identifies whose records are read or written.
type Owner struct {
	UserID    string
	CompanyID string
}

func recordID(kind localstore.Kind, userID string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d", kind, userID, now.UnixNano())
}
