package entities

import "strings"

// SubscriptionType identifies the notification channel a subscription is routed to.
type SubscriptionType string

// Subscription types known to the platform.
const (
	SubscriptionTypeEmail     SubscriptionType = "EMAIL"
	SubscriptionTypePagerDuty SubscriptionType = "PAGERDUTY"
	SubscriptionTypeHipChat   SubscriptionType = "HIPCHAT"
	SubscriptionTypeHTTP      SubscriptionType = "HTTP"
	SubscriptionTypeHubot     SubscriptionType = "HUBOT"
	SubscriptionTypeFlowdock  SubscriptionType = "FLOWDOCK"
	SubscriptionTypeIrcCat    SubscriptionType = "IRCCAT"
	SubscriptionTypeSlack     SubscriptionType = "SLACK"
	SubscriptionTypePushover  SubscriptionType = "PUSHOVER"
	SubscriptionTypeSNMP      SubscriptionType = "SNMP"
	SubscriptionTypeVictorOps SubscriptionType = "VICTOROPS"
	SubscriptionTypeTwilio    SubscriptionType = "TWILIO"
	SubscriptionTypeStride    SubscriptionType = "STRIDE"
)

// AllSubscriptionTypes lists every subscription type in declaration order.
var AllSubscriptionTypes = []SubscriptionType{
	SubscriptionTypeEmail,
	SubscriptionTypePagerDuty,
	SubscriptionTypeHipChat,
	SubscriptionTypeHTTP,
	SubscriptionTypeHubot,
	SubscriptionTypeFlowdock,
	SubscriptionTypeIrcCat,
	SubscriptionTypeSlack,
	SubscriptionTypePushover,
	SubscriptionTypeSNMP,
	SubscriptionTypeVictorOps,
	SubscriptionTypeTwilio,
	SubscriptionTypeStride,
}

// ParseSubscriptionType returns the subscription type matching s, ignoring case.
func ParseSubscriptionType(s string) (SubscriptionType, bool) {
	want := SubscriptionType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range AllSubscriptionTypes {
		if t == want {
			return t, true
		}
	}
	return "", false
}

// Subscription describes where notifications for a check are delivered.
type Subscription struct {
	ID      string           `json:"id,omitempty" yaml:"id,omitempty"`
	CheckID string           `json:"check_id,omitempty" yaml:"check_id,omitempty"`
	Target  string           `json:"target" yaml:"target"`
	Type    SubscriptionType `json:"type" yaml:"type"`
}

// Targets splits the comma-separated target into its individual entries.
// Blank entries are dropped.
func (s Subscription) Targets() []string {
	parts := strings.Split(s.Target, ",")
	targets := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			targets = append(targets, p)
		}
	}
	return targets
}
