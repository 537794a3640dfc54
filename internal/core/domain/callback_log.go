package domain

import (
	"time"

	"github.com/google/uuid"
)

// CallbackLog records one inbound gateway callback for reconciliation
// forensics. Written best-effort; losing an entry never fails the callback.
type CallbackLog struct {
	ID        uuid.UUID `json:"id"`
	TradeNo   string    `json:"trade_no"`
	Kind      string    `json:"kind"`
	RtnCode   string    `json:"rtn_code"`
	Verified  bool      `json:"verified"`
	Applied   bool      `json:"applied"`
	ErrorCode string    `json:"error_code,omitempty"`
	ClientIP  string    `json:"client_ip"`
	CreatedAt time.Time `json:"created_at"`
}
