package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "lowercases", input: "PIZZA", expected: "pizza"},
		{name: "strips acute and cedilla", input: "Açaí", expected: "acai"},
		{name: "strips tilde", input: "Pão de Queijo", expected: "pao de queijo"},
		{name: "trims whitespace", input: "  Lanchonete  ", expected: "lanchonete"},
		{name: "keeps inner spaces", input: "Casa do Açaí", expected: "casa do acai"},
		{name: "only whitespace", input: " \t\n", expected: ""},
		{name: "decomposed input", input: "Café", expected: "cafe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_CaseAndDiacriticInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Normalize("ACAI"), Normalize("Açaí"))
	assert.Equal(t, Normalize("sao joao"), Normalize("SÃO JOÃO"))
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Açaí", "  Pizzaria Dona Rosa ", "ÁÉÍÓÚ âêô ãõ ç", "Crème brûlée", "İstanbul", ""}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"pizzaria", "dona", "rosa"}, Words("pizzaria  dona rosa"))
	assert.Empty(t, Words(""))
}
