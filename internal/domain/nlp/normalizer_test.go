package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(EnglishPack())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and trims", "  Add EXPENSE of 50  ", "add expense of 50"},
		{"collapses whitespace", "add\t\texpense   of 50", "add expense of 50"},
		{"strips accents", "café com açúcar", "cafe com acucar"},
		{"fixes misspellings", "add expence of 50", "add expense of 50"},
		{"rewrites phrases", "what is my balance", "balance"},
		{"expands thousands", "received 2k from salary", "received 2000 from salary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer(EnglishPack())

	inputs := []string{
		"  Add EXPENSE of 50 in Food  ",
		"what is my balance",
		"café 2k expence",
		"spent 30 on lunch yesterday",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "normalizing twice must not change %q", in)
	}
}

func TestNormalizePortuguese(t *testing.T) {
	n := NewNormalizer(PortuguesePack())

	assert.Equal(t, "adicionar despesa de 50 em alimentacao",
		n.Normalize("Adicionar DESPESA de 50 em Alimentação"))
	assert.Equal(t, "saldo", n.Normalize("qual é o meu saldo"))

	// "2 mil" is a multiplier on the digit, never a standalone thousand.
	assert.Equal(t, "gastei 2000 no mercado", n.Normalize("gastei 2 mil no mercado"))
	assert.Equal(t, "gastei 1000 no mercado", n.Normalize("gastei mil no mercado"))
	assert.Equal(t, "recebi 3000 de salario", n.Normalize("recebi 3 mil de salário"))
}
