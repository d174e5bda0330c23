package push

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	welcome := MembershipApproved()("tok-1")
	require.Equal(t, Notification{
		Title: "Membresía abrobada",
		Body:  "Te damos la bienvenida a GMadrid! 🏊",
		Token: "tok-1",
	}, welcome)

	training := TrainingAvailable("29 Mar - 4 Abr")("tok-2")
	require.Equal(t, "Entreno disponible", training.Title)
	require.Equal(t, "Semana 29 Mar - 4 Abr disponible 🏊", training.Body)
	require.Equal(t, "tok-2", training.Token)
}
