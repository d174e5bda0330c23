// internal/domain/push/notification.go
package push

import (
	"context"
	"fmt"
)

// Notification is a single push message addressed to exactly one device token.
type Notification struct {
	Title string
	Body  string
	Token string
}

// Sender delivers one notification. Implementations never multicast.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

const (
	membershipApprovedTitle = "Membresía abrobada"
	membershipApprovedBody  = "Te damos la bienvenida a GMadrid! 🏊"
	trainingAvailableTitle  = "Entreno disponible"
)

// Template builds the notification for a given device token.
type Template func(token string) Notification

// MembershipApproved is sent to every session of a freshly enabled member.
func MembershipApproved() Template {
	return func(token string) Notification {
		return Notification{Title: membershipApprovedTitle, Body: membershipApprovedBody, Token: token}
	}
}

// TrainingAvailable announces a new training week, e.g. "Semana 4-10 Mar disponible 🏊".
func TrainingAvailable(weekLabel string) Template {
	body := fmt.Sprintf("Semana %s disponible 🏊", weekLabel)
	return func(token string) Notification {
		return Notification{Title: trainingAvailableTitle, Body: body, Token: token}
	}
}
