package notifier

import (
	"strings"
	"testing"

	"seyren-stride/domain/entities"
	"seyren-stride/test/helpers"
	"github.com/stretchr/testify/assert"
)

func TestStrideMessageComposer_Compose(t *testing.T) {
	composer := NewStrideMessageComposer("https://seyren.example")

	t.Run("error check", func(t *testing.T) {
		body, color, ok := composer.Compose(helpers.NewCheck("42", "CPU High", entities.AlertTypeError))

		assert.True(t, ok)
		assert.Equal(t, entities.MessageColorRed, color)
		assert.Contains(t, body, "href=https://seyren.example/#/checks/42")
		assert.Contains(t, body, ">CPU High<")
		assert.True(t, strings.HasSuffix(body, "entered its ERROR state."))
		assert.Equal(t, "Check <a href=https://seyren.example/#/checks/42>CPU High</a> has entered its ERROR state.", body)
	})

	t.Run("deterministic", func(t *testing.T) {
		check := helpers.NewCheck("7", "Disk", entities.AlertTypeWarn)
		first, firstColor, _ := composer.Compose(check)
		second, secondColor, _ := composer.Compose(check)

		assert.Equal(t, first, second)
		assert.Equal(t, firstColor, secondColor)
	})

	t.Run("unknown state is not sent", func(t *testing.T) {
		body, color, ok := composer.Compose(helpers.NewCheck("1", "Mem", entities.AlertTypeUnknown))

		assert.False(t, ok)
		assert.Empty(t, body)
		assert.Empty(t, color)
	})

	t.Run("trailing slash and html in name", func(t *testing.T) {
		c := NewStrideMessageComposer("https://seyren.example/")
		body, _, ok := c.Compose(helpers.NewCheck("3", "<b>load</b>", entities.AlertTypeOK))

		assert.True(t, ok)
		assert.Equal(t, "Check <a href=https://seyren.example/#/checks/3>&lt;b&gt;load&lt;/b&gt;</a> has entered its OK state.", body)
	})
}

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		state    entities.AlertType
		expected entities.MessageColor
		ok       bool
	}{
		{state: entities.AlertTypeError, expected: entities.MessageColorRed, ok: true},
		{state: entities.AlertTypeWarn, expected: entities.MessageColorYellow, ok: true},
		{state: entities.AlertTypeOK, expected: entities.MessageColorGreen, ok: true},
		{state: entities.AlertTypeUnknown, ok: false},
		{state: entities.AlertType("EXCEPTION"), ok: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			color, ok := SeverityColor(tt.state)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, color)
		})
	}
}
