package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo(t *testing.T) {
	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
			Contact struct {
				Name string `json:"name"`
			} `json:"contact"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "evote API", doc.Info.Title)
	assert.Equal(t, "1.0", doc.Info.Version)
	assert.Equal(t, "evote maintainers", doc.Info.Contact.Name)
	assert.Contains(t, doc.Paths, "/elections")
	assert.Contains(t, doc.Paths, "/auth/me")
}
