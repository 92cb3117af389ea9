package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_QueryOmitsZeroValues(t *testing.T) {
	q := ListFilter{}.Query()
	assert.Empty(t, q)
}

func TestListFilter_QueryEncodesAllFields(t *testing.T) {
	id := int64(42)
	q := ListFilter{
		Search:    "ada",
		Type:      "CLIENT",
		Status:    "PENDING",
		Priority:  "HIGH",
		ContactID: &id,
		Page:      2,
		PageSize:  10,
	}.Query()

	assert.Equal(t, "ada", q.Get("search"))
	assert.Equal(t, "CLIENT", q.Get("type"))
	assert.Equal(t, "PENDING", q.Get("status"))
	assert.Equal(t, "HIGH", q.Get("priority"))
	assert.Equal(t, "42", q.Get("contact_id"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "10", q.Get("page_size"))
}

func TestListFilter_QueryPartial(t *testing.T) {
	q := ListFilter{Search: "x", Page: 1}.Query()
	assert.Equal(t, "x", q.Get("search"))
	assert.Equal(t, "1", q.Get("page"))
	assert.Empty(t, q.Get("status"))
	assert.Empty(t, q.Get("contact_id"))
}
