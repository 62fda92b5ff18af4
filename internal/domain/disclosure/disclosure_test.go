package disclosure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
)

func TestGenerateAgentRentIgnoresRates(t *testing.T) {
	tables := []RateTable{
		DefaultRates(),
		{model.TransactionRent: {Owner: 99, Agent: 42}},
		{},
		nil,
	}
	for _, rates := range tables {
		got, err := Generate(model.TransactionRent, model.RoleAgent, "Jane Doe", rates)
		require.NoError(t, err)
		assert.Equal(t, AgentRentText, got)
	}
}

func TestGenerateOwnerShortlet(t *testing.T) {
	rates := RateTable{model.TransactionShortlet: {Owner: 7, Agent: 3}}

	got, err := Generate(model.TransactionShortlet, model.RoleOwner, "Jane Doe", rates)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(got, "7%"))
	assert.Equal(t, 1, strings.Count(got, "Jane Doe"))
	assert.NotContains(t, got, "3%")
}

func TestGenerateTemplates(t *testing.T) {
	rates := RateTable{
		model.TransactionSale:         {Owner: 5, Agent: 40},
		model.TransactionRent:         {Owner: 8.5, Agent: 0},
		model.TransactionJointVenture: {Owner: 6, Agent: 30},
		model.TransactionShortlet:     {Owner: 7, Agent: 12},
	}

	tests := []struct {
		tx       model.TransactionType
		role     model.SubmitterRole
		contains []string
	}{
		{model.TransactionSale, model.RoleOwner, []string{"5%", "transaction value", "successful sale"}},
		{model.TransactionJointVenture, model.RoleOwner, []string{"6%", "transaction value", "successful joint venture"}},
		{model.TransactionRent, model.RoleOwner, []string{"8.5%", "first year's rent"}},
		{model.TransactionShortlet, model.RoleOwner, []string{"7%", "every completed booking"}},
		{model.TransactionSale, model.RoleAgent, []string{"40%", "authorised to market", "successful sale"}},
		{model.TransactionShortlet, model.RoleAgent, []string{"12%", "successful shortlet"}},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		t.Run(string(tt.tx)+"/"+string(tt.role), func(t *testing.T) {
			got, err := Generate(tt.tx, tt.role, "Ada", rates)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			assert.True(t, strings.HasPrefix(got, "I, Ada, "))
			assert.False(t, seen[got], "duplicate text")
			seen[got] = true
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	rates := DefaultRates()
	for _, tx := range model.AllTransactionTypes {
		for _, role := range []model.SubmitterRole{model.RoleOwner, model.RoleAgent} {
			a, errA := Generate(tx, role, "  Chidi  Okafor ", rates)
			b, errB := Generate(tx, role, "  Chidi  Okafor ", rates)
			require.NoError(t, errA)
			require.NoError(t, errB)
			assert.Equal(t, a, b)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate("auction", model.RoleOwner, "Ada", DefaultRates())
	assert.ErrorIs(t, err, ErrUnknownTransaction)

	_, err = Generate(model.TransactionSale, "broker", "Ada", DefaultRates())
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = Generate(model.TransactionSale, model.RoleOwner, "Ada", RateTable{})
	assert.ErrorIs(t, err, ErrNoRate)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Jane   Doe ", "Jane Doe"},
		{"Ｊａｎｅ Doe", "Jane Doe"},
		{"Jane\tDoe\n", "Jane Doe"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in))
	}

	got, err := Generate(model.TransactionSale, model.RoleOwner, "   ", DefaultRates())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "I, the submitter, "))
}

func TestRateTableValidate(t *testing.T) {
	assert.NoError(t, DefaultRates().Validate())
	assert.Error(t, RateTable{model.TransactionSale: {Owner: 120}}.Validate())
	assert.Error(t, RateTable{"auction": {Owner: 1}}.Validate())
}
