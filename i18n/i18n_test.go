package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslation(t *testing.T) {
	assert.Equal(t, "المنتجات", T("products"))
	assert.Equal(t, "إتمام البيع", T("completeSale"))
}

func TestFallbackToKey(t *testing.T) {
	assert.Equal(t, "someUnknownKey", T("someUnknownKey"))
}
