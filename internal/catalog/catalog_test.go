package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.Len(t, c.Topics, 9)
	for _, topic := range c.Topics {
		assert.Len(t, topic.Videos, 4, topic.Name)
		assert.Len(t, topic.Articles, 10, topic.Name)
	}
}

func TestMatchTopic(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		query string
		want  string
	}{
		{"Database", "Database"},
		{"intro to machine learning", "Machine Learning"},
		{"learn react hooks", "MERN"},
		{"OS scheduling", "Operating Systems"},
		{"quantum", "Data Structures"},
		{"graph algorithms", "Data Structures"},
		{"computer architecture basics", "COA"},
		{"design a scalable system", "System Design"},
		{"computer networking", "Networks"},
		{"SQL joins", "Database"},
		{"deep neural nets", "Deep Learning"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, c.MatchTopic(tt.query))
		})
	}
}

func TestVideoThumbnail(t *testing.T) {
	v := Video{ID: "8hly31xKli0"}
	assert.Equal(t, "https://img.youtube.com/vi/8hly31xKli0/hqdefault.jpg", v.Thumbnail())
}

func TestParse_RequiresDefaultTopic(t *testing.T) {
	_, err := Parse([]byte("topics:\n  - name: Networks\n"))
	assert.Error(t, err)
}
