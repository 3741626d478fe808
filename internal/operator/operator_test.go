package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

func TestParams_Accessors(t *testing.T) {
	p := Params{
		"query_text": "  madonna and child ",
		"n_results":  float64(25), // JSON numbers decode as float64
		"threshold":  0.75,
		"sources":    []interface{}{"KIK-IRPA", 42, "Fabritius"},
	}

	assert.Equal(t, "madonna and child", p.String("query_text"))
	assert.Equal(t, "", p.String("missing"))
	assert.Equal(t, 25, p.Int("n_results", 100))
	assert.Equal(t, 100, p.Int("missing", 100))
	assert.Equal(t, 0.75, p.Float("threshold", 0.0))
	assert.Equal(t, []string{"KIK-IRPA", "Fabritius"}, p.Strings("sources"))
	assert.Nil(t, p.Strings("missing"))
}

func TestRegistry_Get_Unknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("no_such_operator")
	assert.ErrorIs(t, err, domain.ErrUnknownOperator)
}

func TestRegistry_Describe_Sorted(t *testing.T) {
	r := NewRegistry()
	r.Register(NewSimilaritySearch(nil, nil, nil, "", 10, 1000))
	r.Register(NewSemanticSearch(nil, nil, "", 10, 1000))
	r.Register(NewMetadataFilter(nil, "", 10))

	descriptors := r.Describe()
	assert.Len(t, descriptors, 3)
	assert.Equal(t, KeyMetadataFilter, descriptors[0].Key)
	assert.Equal(t, KeySemanticSearch, descriptors[1].Key)
	assert.Equal(t, KeySimilaritySearch, descriptors[2].Key)
}

func rankedMatches(n int) []domain.SemanticMatch {
	matches := make([]domain.SemanticMatch, 0, n)
	for i := 0; i < n; i++ {
		matches = append(matches, domain.SemanticMatch{
			InventoryNumber: string(rune('A' + i)),
			Similarity:      1.0 - float64(i)*0.1,
		})
	}
	return matches
}

func TestApplyResultMode_TopN(t *testing.T) {
	matches := rankedMatches(5)

	out := applyResultMode(matches, Params{"result_mode": ModeTopN, "n_results": float64(3)})
	assert.Len(t, out, 3)
	assert.Equal(t, "A", out[0].InventoryNumber)

	// Default mode is top_n with a generous n.
	out = applyResultMode(matches, Params{})
	assert.Len(t, out, 5)
}

func TestApplyResultMode_LastN(t *testing.T) {
	matches := rankedMatches(5)

	out := applyResultMode(matches, Params{"result_mode": ModeLastN, "n_results": float64(2)})
	assert.Len(t, out, 2)
	assert.Equal(t, "D", out[0].InventoryNumber)
	assert.Equal(t, "E", out[1].InventoryNumber)
}

func TestApplyResultMode_SimilarityRange(t *testing.T) {
	matches := rankedMatches(5) // similarities 1.0, 0.9, 0.8, 0.7, 0.6

	out := applyResultMode(matches, Params{
		"result_mode":    ModeSimilarityRange,
		"similarity_min": 0.7,
		"similarity_max": 0.9,
	})
	assert.Len(t, out, 3)
	for _, m := range out {
		assert.GreaterOrEqual(t, m.Similarity, 0.7)
		assert.LessOrEqual(t, m.Similarity, 0.9)
	}
}

func TestResolveImageURL(t *testing.T) {
	base := "https://img.example.org"

	assert.Equal(t, "", ResolveImageURL(base, ""))
	assert.Equal(t, "https://elsewhere.org/a.jpg", ResolveImageURL(base, "https://elsewhere.org/a.jpg"))
	assert.Equal(t, "https://img.example.org/img/a.jpg", ResolveImageURL(base, "/img/a.jpg"))
	assert.Equal(t, "https://img.example.org/img/a.jpg", ResolveImageURL(base, "img/a.jpg"))
}

func TestDescriptor_UnconfiguredMessage(t *testing.T) {
	d := Descriptor{Name: "Semantic Search"}
	assert.Equal(t, "Please configure the Semantic Search first", d.UnconfiguredMessage())
}
