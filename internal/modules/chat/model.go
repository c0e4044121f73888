// README: Chat message model; messages are scoped per booking id.
package chat

import (
	"time"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleDriver     Role = "DRIVER"
	RoleFleetOwner Role = "FLEET_OWNER"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleFleetOwner:
		return true
	}
	return false
}

type Message struct {
	ID         types.ID  `json:"id"`
	BookingID  types.ID  `json:"booking_id"`
	SenderRole Role      `json:"sender_role"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}
