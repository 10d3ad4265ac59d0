package valueobjects

import "fmt"

// SenderType distinguishes customer messages from support-agent replies.
type SenderType string

const (
	SenderUser  SenderType = "USER"
	SenderAgent SenderType = "AGENT"
)

func (st SenderType) String() string {
	return string(st)
}

func (st SenderType) IsValid() bool {
	return st == SenderUser || st == SenderAgent
}

func (st SenderType) IsAgent() bool {
	return st == SenderAgent
}

func NewSenderType(s string) (SenderType, error) {
	st := SenderType(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid sender type: %s", s)
	}
	return st, nil
}

// SenderTypeFor maps the boolean the transport layer carries onto the
// persisted sender type.
func SenderTypeFor(isAgent bool) SenderType {
	if isAgent {
		return SenderAgent
	}
	return SenderUser
}
