package textmatch

import (
	"testing"

	"vitrine/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRanker_Score_NameTiers(t *testing.T) {
	t.Parallel()

	ranker := NewRanker(nil)

	tests := []struct {
		name     string
		merchant string
		query    string
		expected int
	}{
		// exact 100 + one overlapping word 20
		{name: "exact", merchant: "Sushi", query: "sushi", expected: 120},
		// prefix 80 + overlap 20
		{name: "prefix", merchant: "Sushi House", query: "sushi", expected: 100},
		// substring 60 + overlap 20
		{name: "substring", merchant: "Casa do Sushi", query: "sushi", expected: 80},
		// substring only, query word too short for overlap
		{name: "short query substring", merchant: "Bar do Zé", query: "do", expected: 60},
		{name: "no match", merchant: "Casa do Açaí", query: "burger", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			merchant := &entity.Merchant{Name: tt.merchant}
			assert.Equal(t, tt.expected, ranker.Score(merchant, tt.query))
		})
	}
}

func TestRanker_Score_AdditiveSignals(t *testing.T) {
	t.Parallel()

	ranker := NewRanker(nil)

	t.Run("tag contains query", func(t *testing.T) {
		merchant := &entity.Merchant{Name: "Dona Rosa", Tags: []string{"Pizzaria", "Massas"}}
		assert.Equal(t, 50, ranker.Score(merchant, "pizza"))
	})

	t.Run("tag signal counted once", func(t *testing.T) {
		merchant := &entity.Merchant{Name: "Dona Rosa", Tags: []string{"pizza", "pizzaria"}}
		assert.Equal(t, 50, ranker.Score(merchant, "pizza"))
	})

	t.Run("description contains query", func(t *testing.T) {
		merchant := &entity.Merchant{Name: "Dona Rosa", Description: "A melhor PIZZA do bairro"}
		assert.Equal(t, 30, ranker.Score(merchant, "pizza"))
	})

	t.Run("multi word overlap", func(t *testing.T) {
		merchant := &entity.Merchant{Name: "Pizzaria Dona Rosa"}
		// "pizza" and "rosa" overlap, "da" is too short; query is not a substring of the name.
		assert.Equal(t, 40, ranker.Score(merchant, "pizza da rosa"))
	})

	t.Run("all signals", func(t *testing.T) {
		merchant := &entity.Merchant{
			Name:        "Açaí Express",
			Description: "Açaí na tigela",
			Tags:        []string{"acai"},
		}
		// prefix 80 + tag 50 + description 30 + overlap 20
		assert.Equal(t, 180, ranker.Score(merchant, Normalize("Açaí")))
	})
}

func TestRanker_Score_Fuzzy(t *testing.T) {
	t.Parallel()

	ranker := NewRanker(nil)

	t.Run("typo in name", func(t *testing.T) {
		merchant := &entity.Merchant{Name: "Burguer"}
		assert.Equal(t, 15, ranker.Score(merchant, "burger"))
	})

	t.Run("typo in name and tags is cumulative", func(t *testing.T) {
		merchant := &entity.Merchant{Name: "Sushi", Tags: []string{"sushi", "susho", "japones"}}
		assert.Equal(t, 45, ranker.Score(merchant, "sushy"))
	})

	t.Run("tag only", func(t *testing.T) {
		merchant := &entity.Merchant{Name: "Casa Nipônica", Tags: []string{"temaki"}}
		assert.Equal(t, 15, ranker.Score(merchant, "temaky"))
	})

	t.Run("short queries skip fuzzy", func(t *testing.T) {
		merchant := &entity.Merchant{Name: "Bar"}
		assert.Equal(t, 0, ranker.Score(merchant, "baz"))
	})

	t.Run("fuzzy skipped when other signals scored", func(t *testing.T) {
		merchant := &entity.Merchant{Name: "Burguer", Description: "burger artesanal"}
		assert.Equal(t, 30, ranker.Score(merchant, "burger"))
	})

	t.Run("distance ratio on long queries", func(t *testing.T) {
		// distance 3 is above the absolute limit but below 0.3 * 19
		merchant := &entity.Merchant{Name: "Churrascaria Gaúcha"}
		assert.Equal(t, 15, ranker.Score(merchant, "churrasscaria gauxa"))
	})
}

func TestRanker_Score_ExactNameIsMaximal(t *testing.T) {
	t.Parallel()

	ranker := NewRanker(nil)
	query := Normalize("Pastelaria")

	candidates := []*entity.Merchant{
		{Name: "Pastelaria"},
		{Name: "Pastelaria do Japa"},
		{Name: "Nova Pastelaria"},
		{Name: "A Pastelaria Central"},
	}

	exact := ranker.Score(candidates[0], query)
	for _, c := range candidates[1:] {
		assert.Greater(t, exact, ranker.Score(c, query), c.Name)
	}
}

func TestRanker_Score_EmptyQuery(t *testing.T) {
	t.Parallel()

	ranker := NewRanker(nil)
	assert.Equal(t, 0, ranker.Score(&entity.Merchant{Name: "Pizzaria"}, ""))
	assert.Equal(t, 0, ranker.Score(nil, "pizza"))
}

func TestRanker_CustomWeights(t *testing.T) {
	t.Parallel()

	ranker := NewRanker(&Weights{ExactName: 500})
	assert.Equal(t, 520, ranker.Score(&entity.Merchant{Name: "Sushi"}, "sushi"))
	assert.Equal(t, 100, ranker.Score(&entity.Merchant{Name: "Sushi Bar"}, "sushi"))
}

func TestMatchesCategory(t *testing.T) {
	t.Parallel()

	merchant := &entity.Merchant{Name: "Casa do Açaí", CategoryID: "sobremesas", Tags: []string{"Açaí", "lanches"}}

	tests := []struct {
		name     string
		category string
		expected bool
	}{
		{name: "wildcard", category: "all", expected: true},
		{name: "wildcard uppercase", category: "ALL", expected: true},
		{name: "empty", category: "", expected: true},
		{name: "tag", category: "lanches", expected: true},
		{name: "tag with diacritics", category: "acai", expected: true},
		{name: "category id", category: "sobremesas", expected: true},
		{name: "tag substring does not match", category: "lanche", expected: false},
		{name: "other", category: "pizza", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, MatchesCategory(merchant, tt.category))
		})
	}
}
