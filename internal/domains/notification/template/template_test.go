package template_test

import (
	"testing"

	"hotel/internal/domains/notification/model"
	"hotel/internal/domains/notification/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	renderer := template.New()

	t.Run("every template renders", func(t *testing.T) {
		for _, name := range []string{
			model.TemplateBookingCreated,
			model.TemplateBookingConfirmed,
			model.TemplateBookingModified,
			model.TemplateBookingCancelled,
			model.TemplateBookingNoShow,
			model.TemplateCheckIn,
			model.TemplateCheckOut,
		} {
			subject, body, err := renderer.Render(model.Notification{Template: name, Data: map[string]string{"room_number": "101"}})
			require.NoError(t, err, name)
			assert.NotEmpty(t, subject, name)
			assert.NotEmpty(t, body, name)
		}
	})

	t.Run("modified carries before and after", func(t *testing.T) {
		_, body, err := renderer.Render(model.Notification{
			Template: model.TemplateBookingModified,
			Data: map[string]string{
				"booking_id":      "b-1",
				"old_room_number": "101",
				"room_number":     "205",
				"old_total":       "300.00",
				"total":           "450.00",
			},
		})
		require.NoError(t, err)
		assert.Contains(t, body, "room 101")
		assert.Contains(t, body, "room 205")
		assert.Contains(t, body, "total 450.00")
	})

	t.Run("optional cancel reason", func(t *testing.T) {
		_, body, err := renderer.Render(model.Notification{
			Template: model.TemplateBookingCancelled,
			Data:     map[string]string{"booking_id": "b-1", "reason": "not confirmed in time"},
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Reason: not confirmed in time.")

		_, body, err = renderer.Render(model.Notification{Template: model.TemplateBookingCancelled, Data: map[string]string{}})
		require.NoError(t, err)
		assert.NotContains(t, body, "Reason")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, _, err := renderer.Render(model.Notification{Template: "welcome"})
		assert.ErrorIs(t, err, model.ErrUnknownTemplate)
	})
}
