package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannels_Format(t *testing.T) {
	r := Recipient{Name: "Emily", Email: "emily@gmail.com", Phone: "+5215550001111"}
	msg := "Nueva actualización disponible en la app"

	tests := []struct {
		name string
		ch   Channel
		kind Kind
		want string
	}{
		{
			name: "email",
			ch:   EmailChannel{},
			kind: KindEmail,
			want: "Enviando EMAIL a Emily (emily@gmail.com): Nueva actualización disponible en la app",
		},
		{
			name: "sms",
			ch:   SMSChannel{},
			kind: KindSMS,
			want: "Enviando SMS a Emily (+5215550001111): Nueva actualización disponible en la app",
		},
		{
			name: "push",
			ch:   PushChannel{},
			kind: KindPush,
			want: "Enviando PUSH a Emily: Nueva actualización disponible en la app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.ch.Kind())
			assert.Equal(t, tt.want, tt.ch.Format(r, msg))
		})
	}
}

func TestChannels_FormatEmptyMessage(t *testing.T) {
	r := Recipient{Name: "Carlos", Email: "carlos@gmail.com"}
	assert.Equal(t, "Enviando EMAIL a Carlos (carlos@gmail.com): ", EmailChannel{}.Format(r, ""))
	assert.Equal(t, "Enviando PUSH a Carlos: ", PushChannel{}.Format(r, ""))
}
